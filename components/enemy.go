package components

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/navigation"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type cfg.EnemyTypeConfig

	// Perceived is where the enemy believes the player is. It trails the
	// real position at Type.PerceptionSpeed.
	Perceived    gamemath.Vec3
	HasPerceived bool

	Route navigation.Route
}

var Enemy = donburi.NewComponentType[EnemyData]()
