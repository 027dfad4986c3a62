package config

// AutopilotConfig tunes the headless player used by the server when no
// human drives the session.
type AutopilotConfig struct {
	// PreferredRange is the fraction of the current weapon range the
	// autopilot tries to keep between itself and its target.
	PreferredRange float64
	// RetreatThreshold is the health fraction below which it backs off.
	RetreatThreshold float64
	// SwitchWhenEmpty cycles weapons when the current one is out of ammo.
	SwitchWhenEmpty bool
}

var Autopilot AutopilotConfig

func init() {
	Autopilot = AutopilotConfig{
		PreferredRange:   0.7,
		RetreatThreshold: 0.3,
		SwitchWhenEmpty:  true,
	}
}
