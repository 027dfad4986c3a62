package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	X, Z      float64
	Facing    float64 // yaw in radians
	TypeName  string  // "Grunt", "Gunner", etc.
	Weapon    string
	Health    int
	MaxHealth int
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		X:         from.X + (to.X-from.X)*t,
		Z:         from.Z + (to.Z-from.Z)*t,
		Facing:    lerpAngle(from.Facing, to.Facing, t),
		TypeName:  to.TypeName,
		Weapon:    to.Weapon,
		Health:    to.Health,
		MaxHealth: to.MaxHealth,
	}
}
