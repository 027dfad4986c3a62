package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence. The
// entity is already out of the collision space; Timer counts down in
// seconds and the entity leaves the world when it reaches 0.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()

// Dying reports whether e is dead or on its way out.
func Dying(e *donburi.Entry) bool {
	return e == nil || !e.Valid() || e.HasComponent(Death)
}
