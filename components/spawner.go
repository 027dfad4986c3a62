package components

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type WaveState int

const (
	WaveNone WaveState = iota
	WaveActive
	WavesCleared
)

func (s WaveState) String() string {
	switch s {
	case WaveNone:
		return "none"
	case WaveActive:
		return "active"
	case WavesCleared:
		return "cleared"
	}
	return "unknown"
}

type SpawnPoint struct {
	Position gamemath.Vec3
	Facing   gamemath.Vec3
}

// SpawnerData is the wave spawner singleton.
type SpawnerData struct {
	Waves  []cfg.WaveConfig
	Points []SpawnPoint

	CheckRadius float64
	CheckMask   []string

	Index int // -1 before the first wave
	State WaveState

	Interval float64
	Timer    float64
	Spawned  int
	Killed   int
	Live     []*donburi.Entry
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// WaveNumber is the 1-based number of the current wave.
func (s *SpawnerData) WaveNumber() int { return s.Index + 1 }

// EnemyCount is the number of spawned enemies still alive.
func (s *SpawnerData) EnemyCount() int { return len(s.Live) }

// Wave returns the current wave or nil.
func (s *SpawnerData) Wave() *cfg.WaveConfig {
	if s.Index < 0 || s.Index >= len(s.Waves) {
		return nil
	}
	return &s.Waves[s.Index]
}

// WeaponFactoryData is the pickup spawner singleton.
type WeaponFactoryData struct {
	Points  []gamemath.Vec3
	Weapons []*cfg.WeaponDef
	Period  float64
	Timer   float64
}

var WeaponFactory = donburi.NewComponentType[WeaponFactoryData]()
