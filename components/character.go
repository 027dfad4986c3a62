package components

import (
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CharacterData is shared by the player and enemies: an inventory of
// weapon entities, the index of the current one and the recoil lock.
type CharacterData struct {
	HitMask []string

	Inventory     []*donburi.Entry
	CurrentWeapon int

	// ShootLock is the remaining recoil in seconds. The character cannot
	// fire while it is positive.
	ShootLock float64

	Facing      gamemath.Vec3 // unit floor-plane heading
	Velocity    gamemath.Vec3
	MountOffset gamemath.Vec3 // in facing space

	// Blood is created on the first hit and reused afterwards.
	Blood fx.Emitter
}

var Character = donburi.NewComponentType[CharacterData]()

// Weapon returns the current weapon entity, or nil when the index does not
// name a held weapon.
func (c *CharacterData) Weapon() *donburi.Entry {
	if c.CurrentWeapon < 0 || c.CurrentWeapon >= len(c.Inventory) {
		return nil
	}
	w := c.Inventory[c.CurrentWeapon]
	if w == nil || !w.Valid() {
		return nil
	}
	return w
}

func (c *CharacterData) Locked() bool { return c.ShootLock > 0 }

// MountPoint returns the weapon mount in arena space for a character
// standing at pos.
func (c *CharacterData) MountPoint(pos gamemath.Vec3) gamemath.Vec3 {
	return pos.Add(gamemath.RotateYaw(c.MountOffset, gamemath.Yaw(c.Facing)))
}
