package config

// NavigationConfig tunes the walking routes characters follow around
// walls and obstacles.
type NavigationConfig struct {
	// CellSize is the side of a route grid cell in arena units.
	CellSize float64
	// RepathInterval is how many seconds a planned route is followed
	// before it is planned again.
	RepathInterval float64
}

var Navigation NavigationConfig

func init() {
	Navigation = NavigationConfig{
		CellSize:       1,
		RepathInterval: 0.5,
	}
}
