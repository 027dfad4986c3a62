package config

import (
	"errors"
	"fmt"
)

var (
	ErrNoWaves       = errors.New("no waves configured")
	ErrEmptyWave     = errors.New("wave spawns no enemies")
	ErrNoProbability = errors.New("wave spawn probabilities sum to zero")
	ErrUnknownEnemy  = errors.New("unknown enemy kind")
	ErrUnknownWeapon = errors.New("unknown weapon")
	ErrMissingHandle = errors.New("weapon has no handle")
	ErrInvalidWeapon = errors.New("invalid weapon definition")
)

// WaveEnemy pairs an enemy kind with its spawn probability.
type WaveEnemy struct {
	Kind        string
	Probability float64
}

// WaveConfig describes one wave.
type WaveConfig struct {
	Enemies       []WaveEnemy
	EnemyCount    int
	SpawnDuration float64 // seconds over which EnemyCount attempts are spread
}

var Waves []WaveConfig

func init() {
	Waves = []WaveConfig{
		{
			Enemies:       []WaveEnemy{{Kind: "Grunt", Probability: 1}},
			EnemyCount:    5,
			SpawnDuration: 10,
		},
		{
			Enemies: []WaveEnemy{
				{Kind: "Grunt", Probability: 2},
				{Kind: "Gunner", Probability: 1},
			},
			EnemyCount:    8,
			SpawnDuration: 12,
		},
		{
			Enemies: []WaveEnemy{
				{Kind: "Grunt", Probability: 2},
				{Kind: "Gunner", Probability: 2},
				{Kind: "Torcher", Probability: 1},
				{Kind: "Brute", Probability: 1},
			},
			EnemyCount:    12,
			SpawnDuration: 15,
		},
	}
}

// NormalizeWave returns a copy of w whose probabilities sum to one.
// Negative probabilities count as zero.
func NormalizeWave(w WaveConfig) (WaveConfig, error) {
	out := w
	out.Enemies = make([]WaveEnemy, len(w.Enemies))
	var sum float64
	for i, e := range w.Enemies {
		if e.Probability < 0 {
			e.Probability = 0
		}
		out.Enemies[i] = e
		sum += e.Probability
	}
	if sum <= 0 {
		return w, ErrNoProbability
	}
	for i := range out.Enemies {
		out.Enemies[i].Probability /= sum
	}
	return out, nil
}

// PrepareWaves validates waves against the known enemy kinds and returns
// normalized copies.
func PrepareWaves(waves []WaveConfig, enemies map[string]EnemyTypeConfig) ([]WaveConfig, error) {
	if len(waves) == 0 {
		return nil, ErrNoWaves
	}
	out := make([]WaveConfig, 0, len(waves))
	for i, w := range waves {
		if w.EnemyCount <= 0 {
			return nil, fmt.Errorf("wave %d: %w", i+1, ErrEmptyWave)
		}
		if w.SpawnDuration < 0 {
			return nil, fmt.Errorf("wave %d: negative spawn duration %v", i+1, w.SpawnDuration)
		}
		for _, e := range w.Enemies {
			if _, ok := enemies[e.Kind]; !ok {
				return nil, fmt.Errorf("wave %d: %w %q", i+1, ErrUnknownEnemy, e.Kind)
			}
		}
		n, err := NormalizeWave(w)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ValidateWeapons checks that every definition can be mounted and fired,
// and that every weapon referenced by characters exists.
func ValidateWeapons(defs []*WeaponDef, player PlayerConfig, enemies map[string]EnemyTypeConfig) error {
	names := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.Handle == nil {
			return fmt.Errorf("%q: %w", d.Name, ErrMissingHandle)
		}
		if d.Range <= 0 || d.RecoilTime < 0 || d.MaxAmmo < 0 {
			return fmt.Errorf("%q: %w: range %v recoil %v ammo %d", d.Name, ErrInvalidWeapon, d.Range, d.RecoilTime, d.MaxAmmo)
		}
		switch d.Kind {
		case WeaponSpray:
			if d.SprayAngle <= 0 {
				return fmt.Errorf("%q: %w: spray angle %v", d.Name, ErrInvalidWeapon, d.SprayAngle)
			}
		case WeaponLauncher:
			if d.ShotTime <= 0 || d.ProjectileRadius <= 0 {
				return fmt.Errorf("%q: %w: shot time %v radius %v", d.Name, ErrInvalidWeapon, d.ShotTime, d.ProjectileRadius)
			}
		}
		names[d.Name] = true
	}
	for _, n := range player.StartingWeapons {
		if !names[n] {
			return fmt.Errorf("player: %w %q", ErrUnknownWeapon, n)
		}
	}
	for kind, e := range enemies {
		if e.Weapon != "" && !names[e.Weapon] {
			return fmt.Errorf("enemy %s: %w %q", kind, ErrUnknownWeapon, e.Weapon)
		}
	}
	return nil
}
