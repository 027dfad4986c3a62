package config

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64 // units/s^2 toward the input direction
	MaxSpeed     float64
	Friction     float64 // units/s^2 applied when there is no input

	// Combat
	Health          int
	StartingWeapons []string // equipped in order, the first one ends up current

	// Dimensions
	Size        float64        // side of the square collider
	MountOffset gamemath.Vec3 // weapon mount relative to the character centre, in facing space
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name      string
	Health    int
	MoveSpeed float64
	Weapon    string

	// PerceptionSpeed is how fast (units/s) the remembered player position
	// catches up with the real one.
	PerceptionSpeed float64

	Size float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// RangeMargin shrinks the weapon range when deciding to stop and shoot.
	RangeMargin float64
	MountOffset gamemath.Vec3

	// CorpseTime is how long (seconds) a dead enemy stays in the world
	// after it left the collision space.
	CorpseTime float64
}

// CombatConfig contains hit feedback values
type CombatConfig struct {
	HitHighlightStrength float64
	HitHighlightTime     float64
	AimHighlightStrength float64
	AimHighlightTime     float64
}

// HazardConfig contains obstacle and explosive values
type HazardConfig struct {
	// Dynamic obstacles
	ImpulseFactor   float64 // force = direction * damage * ImpulseFactor
	ImpulseDuration float64 // seconds a recorded hit keeps pushing

	// Explosive obstacles
	ExplosionTime   float64 // fuse length in seconds
	ExplosionRadius float64
	ExplosionDamage int

	// Static obstacles
	DeformationDecayTime float64

	// Launcher projectiles
	ProjectileSize float64
}

// PhysicsConfig contains fixed-step simulation values
type PhysicsConfig struct {
	Gravity       float64 // signed vertical acceleration, negative pulls down
	FixedStep     float64 // seconds
	MaxFixedSteps int     // per frame, to avoid a spiral after a long stall

	ObstacleMass        float64
	ObstacleInertia     float64
	ObstacleDrag        float64 // linear velocity lost per second, as a fraction
	ObstacleAngularDrag float64
}

// SpawnerConfig contains wave spawner values
type SpawnerConfig struct {
	// CheckRadius is the clearance a spawn point needs before an enemy
	// may appear on it.
	CheckRadius float64
}

// WeaponFactoryConfig contains values for the pickup spawner
type WeaponFactoryConfig struct {
	Period      float64 // seconds between spawn attempts
	CheckRadius float64
	SpinSpeed   float64 // degrees per second while lying on the floor
}

// GameConfig holds session-level values
type GameConfig struct {
	AppName      string
	WinTimeScale float64 // time scale after every wave is cleared
	CellSize     float64 // collision cell size in arena units
}

// ArenaConfig holds map import values
type ArenaConfig struct {
	PixelsPerUnit float64
	Path          string
}

// Global configuration instances
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Hazard HazardConfig
var Physics PhysicsConfig
var Spawner SpawnerConfig
var WeaponFactory WeaponFactoryConfig
var Game GameConfig
var Arena ArenaConfig

func init() {
	Physics = PhysicsConfig{
		Gravity:       -9.81,
		FixedStep:     0.02,
		MaxFixedSteps: 8,

		ObstacleMass:        4,
		ObstacleInertia:     2,
		ObstacleDrag:        3,
		ObstacleAngularDrag: 3,
	}

	Player = PlayerConfig{
		Acceleration: 40,
		MaxSpeed:     8,
		Friction:     30,

		Health:          100,
		StartingWeapons: []string{"Knife", "Pistol"},

		Size:        1,
		MountOffset: gamemath.V3(0.45, 0, 0.3),
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Grunt": {
				Name:            "Grunt",
				Health:          40,
				MoveSpeed:       3.5,
				Weapon:          "Knife",
				PerceptionSpeed: 5,
				Size:            1,
			},
			"Gunner": {
				Name:            "Gunner",
				Health:          30,
				MoveSpeed:       3,
				Weapon:          "Pistol",
				PerceptionSpeed: 5,
				Size:            1,
			},
			"Torcher": {
				Name:            "Torcher",
				Health:          60,
				MoveSpeed:       2.5,
				Weapon:          "Flamer",
				PerceptionSpeed: 4,
				Size:            1.2,
			},
			"Brute": {
				Name:            "Brute",
				Health:          120,
				MoveSpeed:       2,
				Weapon:          "Knife",
				PerceptionSpeed: 3,
				Size:            1.6,
			},
		},
		RangeMargin: 0.1,
		MountOffset: gamemath.V3(0.45, 0, 0.3),
		CorpseTime:  0,
	}

	Combat = CombatConfig{
		HitHighlightStrength: 1,
		HitHighlightTime:     0.1,
		AimHighlightStrength: 0.4,
		AimHighlightTime:     0,
	}

	Hazard = HazardConfig{
		ImpulseFactor:   2,
		ImpulseDuration: 0.1,

		ExplosionTime:   3,
		ExplosionRadius: 3,
		ExplosionDamage: 50,

		DeformationDecayTime: 2,

		ProjectileSize: 0.3,
	}

	Spawner = SpawnerConfig{
		CheckRadius: 0.8,
	}

	WeaponFactory = WeaponFactoryConfig{
		Period:      10,
		CheckRadius: 0.8,
		SpinSpeed:   90,
	}

	Game = GameConfig{
		AppName:      "doomerang-arena",
		WinTimeScale: 0.1,
		CellSize:     2,
	}

	Arena = ArenaConfig{
		PixelsPerUnit: 16,
	}
}
