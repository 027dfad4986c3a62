package components

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WeaponData is a weapon instance. It lies on the floor until picked up,
// then follows its owner.
type WeaponData struct {
	Def *cfg.WeaponDef

	CurrentAmmo int
	// Unlimited weapons never spend ammo.
	Unlimited bool

	IsPicked bool
	Active   bool
	Owner    donburi.Entity

	Origin gamemath.Vec3
	Yaw    float64

	// Touching is true while the pickup trigger overlaps the player.
	Touching bool
}

var Weapon = donburi.NewComponentType[WeaponData]()

// SetAmmo stores n clamped to [0, MaxAmmo].
func (w *WeaponData) SetAmmo(n int) {
	if n > w.Def.MaxAmmo {
		n = w.Def.MaxAmmo
	}
	if n < 0 {
		n = 0
	}
	w.CurrentAmmo = n
}

func (w *WeaponData) Full() bool { return w.CurrentAmmo >= w.Def.MaxAmmo }

// Spend uses one round.
func (w *WeaponData) Spend() {
	if w.Unlimited {
		return
	}
	w.SetAmmo(w.CurrentAmmo - 1)
}

// Barrel returns the muzzle position in arena space.
func (w *WeaponData) Barrel() gamemath.Vec3 {
	return w.Origin.Add(gamemath.RotateYaw(w.Def.Barrel, w.Yaw))
}

// Handle returns the grip offset in arena space.
func (w *WeaponData) Handle() gamemath.Vec3 {
	return gamemath.RotateYaw(*w.Def.Handle, w.Yaw)
}
