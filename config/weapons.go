package config

import "github.com/automoto/doomerang-arena/shared/gamemath"

// WeaponKind selects how a weapon resolves a shot.
type WeaponKind int

const (
	WeaponMelee WeaponKind = iota
	WeaponRanged
	WeaponSpray
	WeaponLauncher
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponMelee:
		return "melee"
	case WeaponRanged:
		return "ranged"
	case WeaponSpray:
		return "spray"
	case WeaponLauncher:
		return "launcher"
	}
	return "unknown"
}

// WeaponDef is the immutable description of a weapon. Weapons that share a
// *WeaponDef are the same weapon for inventory merging.
type WeaponDef struct {
	Name        string
	Description string
	Kind        WeaponKind

	Damage     int
	RecoilTime float64 // seconds the wielder is locked after firing
	Range      float64
	MaxAmmo    int

	SprayAngle       float64 // degrees, spray only
	ShotTime         float64 // seconds of flight, launcher only
	ProjectileRadius float64 // blast radius, launcher only

	// Handle is the grip point relative to the weapon origin. It is
	// required: a weapon without a handle cannot be mounted.
	Handle *gamemath.Vec3
	// Barrel is the muzzle relative to the weapon origin.
	Barrel gamemath.Vec3

	Size float64 // side of the pickup trigger
}

func handle(x, y, z float64) *gamemath.Vec3 {
	v := gamemath.V3(x, y, z)
	return &v
}

// Weapons lists every weapon definition, in the order the weapon factory
// draws from.
var Weapons []*WeaponDef

// WeaponByName returns the definition with the given name, or nil.
func WeaponByName(name string) *WeaponDef {
	for _, w := range Weapons {
		if w.Name == name {
			return w
		}
	}
	return nil
}

func init() {
	Weapons = []*WeaponDef{
		{
			Name:        "Knife",
			Description: "Short reach, never runs dry.",
			Kind:        WeaponMelee,
			Damage:      20,
			RecoilTime:  0.4,
			Range:       1.6,
			Handle:      handle(0, 0, -0.1),
			Barrel:      gamemath.V3(0, 0, 0.3),
			Size:        0.6,
		},
		{
			Name:        "Pistol",
			Description: "Reliable hitscan sidearm.",
			Kind:        WeaponRanged,
			Damage:      15,
			RecoilTime:  0.3,
			Range:       20,
			MaxAmmo:     30,
			Handle:      handle(0, -0.1, -0.15),
			Barrel:      gamemath.V3(0, 0, 0.35),
			Size:        0.6,
		},
		{
			Name:        "Flamer",
			Description: "Cone of fire that stops at walls.",
			Kind:        WeaponSpray,
			Damage:      6,
			RecoilTime:  0.1,
			Range:       5,
			MaxAmmo:     120,
			SprayAngle:  25,
			Handle:      handle(0, -0.1, -0.3),
			Barrel:      gamemath.V3(0, 0, 0.6),
			Size:        0.8,
		},
		{
			Name:             "Launcher",
			Description:      "Lobs a grenade that bursts on contact.",
			Kind:             WeaponLauncher,
			Damage:           60,
			RecoilTime:       1,
			Range:            15,
			MaxAmmo:          6,
			ShotTime:         0.5,
			ProjectileRadius: 3,
			Handle:           handle(0, -0.1, -0.3),
			Barrel:           gamemath.V3(0, 0.1, 0.6),
			Size:             0.8,
		},
	}
}
