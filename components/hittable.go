package components

import "github.com/yohamta/donburi"

// HittableKind is the closed set of things a hit can land on.
type HittableKind int

const (
	HitPlayer HittableKind = iota
	HitEnemy
	HitStaticObstacle
	HitDynamicObstacle
	HitExplosiveObstacle
)

func (k HittableKind) String() string {
	switch k {
	case HitPlayer:
		return "player"
	case HitEnemy:
		return "enemy"
	case HitStaticObstacle:
		return "static"
	case HitDynamicObstacle:
		return "dynamic"
	case HitExplosiveObstacle:
		return "explosive"
	}
	return "unknown"
}

// IsCharacter reports whether the kind has health.
func (k HittableKind) IsCharacter() bool {
	return k == HitPlayer || k == HitEnemy
}

type HittableData struct {
	Kind HittableKind
}

var Hittable = donburi.NewComponentType[HittableData]()
