// Package events carries combat notifications from the simulation to its
// observers (HUD, audio, network, the wave spawner).
package events

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	donburievents "github.com/yohamta/donburi/features/events"
)

type EnemyEvent struct {
	Enemy *donburi.Entry
	// Point is where the hit landed. Zero for spawn and kill events.
	Point  gamemath.Vec3
	Damage int
}

type PlayerEvent struct {
	Player *donburi.Entry
	Point  gamemath.Vec3
	Damage int
}

type WaveEvent struct {
	Wave       int // 1-based
	EnemyCount int
}

var (
	EnemyHit     = donburievents.NewEventType[EnemyEvent]()
	EnemyKilled  = donburievents.NewEventType[EnemyEvent]()
	EnemySpawned = donburievents.NewEventType[EnemyEvent]()

	PlayerHit              = donburievents.NewEventType[PlayerEvent]()
	PlayerKilled           = donburievents.NewEventType[PlayerEvent]()
	PlayerInventoryChanged = donburievents.NewEventType[PlayerEvent]()

	WaveStarted     = donburievents.NewEventType[WaveEvent]()
	AllWavesCleared = donburievents.NewEventType[WaveEvent]()
)
