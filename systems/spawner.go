package systems

import (
	"log"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PickWeighted walks the cumulative probabilities and returns the first
// index whose running total exceeds draw, or -1 if none does.
func PickWeighted(probs []float64, draw float64) int {
	var acc float64
	for i, p := range probs {
		if acc+p > draw {
			return i
		}
		acc += p
	}
	return -1
}

func spawnerOf(w donburi.World) *components.SpawnerData {
	e, ok := components.Spawner.First(w)
	if !ok {
		return nil
	}
	return components.Spawner.Get(e)
}

// SubscribeSpawner hooks the spawner to kill events on the session bus.
func SubscribeSpawner(ecs *ecs.ECS, bus *events.Bus) {
	events.Subscribe(bus, events.EnemyKilled, func(ev events.EnemyEvent) {
		onEnemyKilled(ecs, ev.Enemy)
	})
}

// StartWaves begins the first wave. It needs at least one wave and one
// spawn point.
func StartWaves(ecs *ecs.ECS) bool {
	sp := spawnerOf(ecs.World)
	if sp == nil || len(sp.Waves) == 0 || len(sp.Points) == 0 {
		return false
	}
	sp.Index = -1
	startNextWave(ecs, sp)
	return true
}

func startNextWave(ecs *ecs.ECS, sp *components.SpawnerData) {
	sp.Index++
	sp.Killed = 0
	sp.Spawned = 0
	sp.Live = sp.Live[:0]
	sp.Timer = 0
	sp.State = components.WaveActive

	wave := sp.Wave()
	sp.Interval = wave.SpawnDuration / float64(wave.EnemyCount)

	log.Printf("Wave %d started: %d enemies over %.1fs", sp.WaveNumber(), wave.EnemyCount, wave.SpawnDuration)
	events.Publish(busOf(ecs.World), events.WaveStarted, events.WaveEvent{Wave: sp.WaveNumber(), EnemyCount: wave.EnemyCount})
}

// UpdateSpawner makes one spawn attempt per elapsed interval until the
// wave's quota has been spawned. An attempt on an occupied point is
// skipped, not retried.
func UpdateSpawner(ecs *ecs.ECS) {
	sp := spawnerOf(ecs.World)
	if sp == nil || sp.State != components.WaveActive {
		return
	}
	wave := sp.Wave()
	if sp.Spawned >= wave.EnemyCount {
		return
	}

	sp.Timer += deltaOf(ecs.World)
	for sp.Spawned < wave.EnemyCount && sp.Timer >= sp.Interval {
		sp.Timer -= sp.Interval
		trySpawn(ecs, sp)
		if sp.Interval <= 0 {
			// Zero-length waves try once per frame.
			break
		}
	}
}

func trySpawn(ecs *ecs.ECS, sp *components.SpawnerData) {
	game := components.GameOf(ecs.World)
	point := sp.Points[game.Rand.IntN(len(sp.Points))]
	draw := game.Rand.Float64()

	wave := sp.Wave()
	probs := make([]float64, len(wave.Enemies))
	for i, e := range wave.Enemies {
		probs[i] = e.Probability
	}
	idx := PickWeighted(probs, draw)
	if idx < 0 {
		return
	}
	if queryWorld(ecs.World).CheckSphere(point.Position, sp.CheckRadius, sp.CheckMask...) {
		return
	}

	enemy := factory.CreateEnemy(ecs, wave.Enemies[idx].Kind, point.Position, point.Facing)
	if enemy == nil {
		return
	}
	EquipWeapon(ecs, enemy, 0)

	sp.Live = append(sp.Live, enemy)
	sp.Spawned++
	events.Publish(busOf(ecs.World), events.EnemySpawned, events.EnemyEvent{Enemy: enemy})
}

func onEnemyKilled(ecs *ecs.ECS, enemy *donburi.Entry) {
	sp := spawnerOf(ecs.World)
	if sp == nil || sp.State != components.WaveActive {
		return
	}
	// Only enemies this wave spawned count toward it.
	found := false
	for i, e := range sp.Live {
		if e.Entity() == enemy.Entity() {
			sp.Live = append(sp.Live[:i], sp.Live[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	sp.Killed++

	if sp.Killed != sp.Wave().EnemyCount {
		return
	}
	if sp.Index < len(sp.Waves)-1 {
		startNextWave(ecs, sp)
		return
	}

	sp.State = components.WavesCleared
	if game := components.GameOf(ecs.World); game != nil {
		game.Won = true
	}
	log.Printf("All %d waves cleared", len(sp.Waves))
	events.Publish(busOf(ecs.World), events.AllWavesCleared, events.WaveEvent{Wave: sp.WaveNumber()})
}

// ClearEnemies removes every live spawned enemy without kill events.
func ClearEnemies(ecs *ecs.ECS) {
	sp := spawnerOf(ecs.World)
	if sp == nil {
		return
	}
	for _, e := range sp.Live {
		if e.Valid() && e.HasComponent(components.Character) {
			for _, w := range components.Character.Get(e).Inventory {
				destroy(ecs.World, w)
			}
		}
		destroy(ecs.World, e)
	}
	sp.Live = sp.Live[:0]
}
