package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPickWeighted(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		draw  float64
		want  int
	}{
		{"first bucket", []float64{0.2, 0.3, 0.5}, 0, 0},
		{"middle bucket", []float64{0.2, 0.3, 0.5}, 0.25, 1},
		{"last bucket", []float64{0.2, 0.3, 0.5}, 0.99, 2},
		{"draw at the total", []float64{0.2, 0.3, 0.5}, 1, -1},
		{"zero weights skipped", []float64{0, 1}, 0, 1},
		{"nothing to pick", nil, 0.5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickWeighted(tt.probs, tt.draw); got != tt.want {
				t.Errorf("PickWeighted(%v, %v) = %d, want %d", tt.probs, tt.draw, got, tt.want)
			}
		})
	}
}

func newSpawnerECS(t *testing.T, rnd *scriptedRand, waves ...cfg.WaveConfig) (*ecs.ECS, *components.SpawnerData) {
	t.Helper()
	e := newTestECS(t, nil, rnd)
	prepared, err := cfg.PrepareWaves(waves, cfg.Enemy.Types)
	if err != nil {
		t.Fatalf("PrepareWaves: %v", err)
	}
	points := []components.SpawnPoint{
		{Position: at(10, 10), Facing: north},
		{Position: at(30, 30), Facing: north},
	}
	factory.CreateSpawner(e, prepared, points)
	SubscribeSpawner(e, busOf(e.World))
	return e, spawnerOf(e.World)
}

func grunts(count int, duration float64) cfg.WaveConfig {
	return cfg.WaveConfig{
		Enemies:       []cfg.WaveEnemy{{Kind: "Grunt", Probability: 1}},
		EnemyCount:    count,
		SpawnDuration: duration,
	}
}

func TestStartWavesNeedsWavesAndPoints(t *testing.T) {
	e := newTestECS(t, nil, nil)
	if StartWaves(e) {
		t.Fatal("no spawner should not start")
	}
	factory.CreateSpawner(e, nil, []components.SpawnPoint{{Position: at(1, 1)}})
	if StartWaves(e) {
		t.Error("no waves should not start")
	}
}

func TestBlockedSpawnIsSkipped(t *testing.T) {
	// Points: 0, 0 (occupied by then), 1.
	rnd := &scriptedRand{ints: []int{0, 0, 1}}
	e, sp := newSpawnerECS(t, rnd, grunts(2, 2))
	spawned := record(e, events.EnemySpawned)
	started := record(e, events.WaveStarted)

	if !StartWaves(e) {
		t.Fatal("StartWaves failed")
	}
	if len(*started) != 1 || (*started)[0].Wave != 1 || (*started)[0].EnemyCount != 2 {
		t.Fatalf("wave started events = %+v", *started)
	}
	if sp.Interval != 1 {
		t.Fatalf("interval = %v, want 1", sp.Interval)
	}

	step(e, 1)
	UpdateSpawner(e)
	if sp.Spawned != 1 || len(*spawned) != 1 {
		t.Fatalf("spawned = %d, want 1", sp.Spawned)
	}

	step(e, 1)
	UpdateSpawner(e)
	if sp.Spawned != 1 {
		t.Fatalf("attempt on an occupied point spawned; spawned = %d", sp.Spawned)
	}

	step(e, 1)
	UpdateSpawner(e)
	if sp.Spawned != 2 || sp.EnemyCount() != 2 {
		t.Fatalf("spawned = %d live = %d, want 2 and 2", sp.Spawned, sp.EnemyCount())
	}
	if got := components.Position(sp.Live[1]); got.X != 30 || got.Z != 30 {
		t.Errorf("second enemy at %v, want the free point", got)
	}

	step(e, 5)
	UpdateSpawner(e)
	if sp.Spawned != 2 {
		t.Errorf("spawned past the quota: %d", sp.Spawned)
	}
}

func TestEveryPointBlockedUntilFreed(t *testing.T) {
	e, sp := newSpawnerECS(t, &scriptedRand{ints: []int{0, 1, 1, 0}}, grunts(2, 2))
	blockers := []*donburi.Entry{
		factory.CreateObstacle(e, components.HitStaticObstacle, 10, 10, 1, 1),
		factory.CreateObstacle(e, components.HitStaticObstacle, 30, 30, 1, 1),
	}
	StartWaves(e)

	// The whole spawn duration passes with both points occupied.
	for i := 0; i < 4; i++ {
		step(e, 0.5)
		UpdateSpawner(e)
	}
	if sp.Spawned != 0 || sp.EnemyCount() != 0 {
		t.Fatalf("spawned = %d while every point was blocked", sp.Spawned)
	}

	for _, b := range blockers {
		destroy(e.World, b)
	}

	step(e, 0.5)
	UpdateSpawner(e)
	if sp.Spawned != 0 {
		t.Fatalf("spawned = %d before the next interval", sp.Spawned)
	}
	step(e, 0.5)
	UpdateSpawner(e)
	if sp.Spawned != 1 {
		t.Fatalf("spawned = %d, want 1 on the first interval after freeing", sp.Spawned)
	}
	if got := components.Position(sp.Live[0]); got.X != 30 || got.Z != 30 {
		t.Errorf("enemy at %v, want the drawn point", got)
	}
}

func TestUnpickedDrawSpawnsNothing(t *testing.T) {
	rnd := &scriptedRand{floats: []float64{1}}
	e, sp := newSpawnerECS(t, rnd, grunts(1, 1))
	StartWaves(e)

	step(e, 1)
	UpdateSpawner(e)
	if sp.Spawned != 0 {
		t.Errorf("spawned = %d, want 0", sp.Spawned)
	}
}

func TestSpawnedEnemyIsArmed(t *testing.T) {
	e, sp := newSpawnerECS(t, &scriptedRand{}, grunts(1, 0))
	StartWaves(e)

	step(e, 0.01)
	UpdateSpawner(e)
	if sp.Spawned != 1 {
		t.Fatalf("zero-length wave should spawn on the first frame, spawned = %d", sp.Spawned)
	}
	w := components.Character.Get(sp.Live[0]).Weapon()
	if w == nil || components.Weapon.Get(w).Def.Name != "Knife" {
		t.Fatal("grunt should hold its knife")
	}
	if !components.Weapon.Get(w).Unlimited {
		t.Error("enemy weapons never run dry")
	}
}

func TestKillsAdvanceWavesUntilWon(t *testing.T) {
	e, sp := newSpawnerECS(t, &scriptedRand{ints: []int{0, 1}}, grunts(2, 0), grunts(1, 0))
	started := record(e, events.WaveStarted)
	cleared := record(e, events.AllWavesCleared)
	StartWaves(e)

	step(e, 0.01)
	UpdateSpawner(e)
	UpdateSpawner(e)
	if sp.Spawned != 2 {
		t.Fatalf("spawned = %d, want 2", sp.Spawned)
	}

	// A kill the spawner did not spawn does not count.
	stray := factory.CreateEnemy(e, "Grunt", at(50, 50), north)
	ApplyHit(e, stray, 1000, at(50, 50), north)
	if sp.Killed != 0 {
		t.Fatalf("stray kill counted: killed = %d", sp.Killed)
	}

	first, second := sp.Live[0], sp.Live[1]
	ApplyHit(e, first, 1000, components.Position(first), north)
	if sp.Killed != 1 || sp.WaveNumber() != 1 {
		t.Fatalf("killed = %d wave = %d, want 1 and 1", sp.Killed, sp.WaveNumber())
	}
	ApplyHit(e, second, 1000, components.Position(second), north)
	if sp.WaveNumber() != 2 || sp.Killed != 0 || sp.Spawned != 0 {
		t.Fatalf("wave = %d killed = %d spawned = %d after clearing wave 1", sp.WaveNumber(), sp.Killed, sp.Spawned)
	}
	if len(*started) != 2 {
		t.Fatalf("wave started events = %d, want 2", len(*started))
	}

	UpdateSpawner(e)
	last := sp.Live[0]
	ApplyHit(e, last, 1000, components.Position(last), north)

	if sp.State != components.WavesCleared {
		t.Errorf("state = %v, want cleared", sp.State)
	}
	if !components.GameOf(e.World).Won {
		t.Error("game should be won")
	}
	if len(*cleared) != 1 || (*cleared)[0].Wave != 2 {
		t.Errorf("all waves cleared events = %+v", *cleared)
	}
	if got := components.GameOf(e.World).Kills; got != 4 {
		t.Errorf("game kills = %d, want 4", got)
	}

	UpdateSpawner(e)
	if sp.Spawned != 1 {
		t.Error("nothing spawns after the last wave")
	}
}

func TestClearEnemiesPublishesNoKills(t *testing.T) {
	e, sp := newSpawnerECS(t, &scriptedRand{ints: []int{0, 1}}, grunts(2, 0))
	killed := record(e, events.EnemyKilled)
	StartWaves(e)
	step(e, 0.01)
	UpdateSpawner(e)
	UpdateSpawner(e)

	var live []donburi.Entity
	for _, enemy := range sp.Live {
		live = append(live, enemy.Entity())
	}
	weaponID := components.Character.Get(sp.Live[0]).Weapon().Entity()

	ClearEnemies(e)

	if sp.EnemyCount() != 0 {
		t.Errorf("live = %d, want 0", sp.EnemyCount())
	}
	for _, enemy := range live {
		if alive(e, enemy) {
			t.Error("cleared enemy still in the world")
		}
	}
	if alive(e, weaponID) {
		t.Error("cleared enemy's weapon still in the world")
	}
	if len(*killed) != 0 {
		t.Errorf("kill events = %d, want 0", len(*killed))
	}
}
