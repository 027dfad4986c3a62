// Package game assembles the arena simulation into a session that can be
// advanced one frame at a time.
package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/shared/arena"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrClosed = errors.New("session closed")

// Options configures a session. Zero values pick the defaults.
type Options struct {
	Arena *arena.Arena     // nil uses arena.Default()
	Waves []cfg.WaveConfig // nil uses cfg.Waves
	Seed  uint64
	Fx    fx.Sink // nil discards cues

	// Autopilot lets the built-in AI drive the player.
	Autopilot bool
}

// Stats summarizes a session across resets.
type Stats struct {
	BestWave int
	Kills    int
	Won      bool
	Resets   int
	Elapsed  float64
}

// Session owns one arena world. All methods must be called from the same
// goroutine.
type Session struct {
	ID uuid.UUID

	arena *arena.Arena
	waves []cfg.WaveConfig
	sink  fx.Sink
	rng   *rand.Rand
	auto  bool

	ecs    *ecs.ECS
	bus    *events.Bus
	player *donburi.Entry
	fixed  []ecs.System

	accumulator float64
	onBuild     []func(*Session)

	resets   int
	kills    int
	bestWave int
	closed   bool
}

// NewSession validates the configuration and builds the first world.
func NewSession(opts Options) (*Session, error) {
	waves := opts.Waves
	if waves == nil {
		waves = cfg.Waves
	}
	prepared, err := cfg.PrepareWaves(waves, cfg.Enemy.Types)
	if err != nil {
		return nil, fmt.Errorf("invalid waves: %w", err)
	}
	if err := cfg.ValidateWeapons(cfg.Weapons, cfg.Player, cfg.Enemy.Types); err != nil {
		return nil, fmt.Errorf("invalid weapons: %w", err)
	}

	a := opts.Arena
	if a == nil {
		a = arena.Default()
	}
	if len(a.EnemySpawns) == 0 {
		return nil, fmt.Errorf("arena %s: %w", a.Name, arena.ErrNoEnemySpawns)
	}

	sink := opts.Fx
	if sink == nil {
		sink = fx.Nop{}
	}

	s := &Session{
		ID:    uuid.New(),
		arena: a,
		waves: prepared,
		sink:  sink,
		rng:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		auto:  opts.Autopilot,
	}
	s.build()
	log.Printf("Session %s started on arena %q with %d waves", s.ID, a.Name, len(prepared))
	return s, nil
}

// OnBuild registers fn to run after every world build, resets included,
// before the first wave starts. It also runs right away for the current
// world. Subscribe to the bus from here; a reset replaces it.
func (s *Session) OnBuild(fn func(*Session)) {
	s.onBuild = append(s.onBuild, fn)
	if s.ecs != nil {
		fn(s)
	}
}

func (s *Session) build() {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)
	bus := events.NewBus(world)
	a := s.arena

	factory.CreateSpace(e, a.Width, a.Depth, cfg.Game.CellSize)
	factory.CreateGame(e, components.GameData{Bus: bus, Fx: s.sink, Rand: s.rng})
	systems.GetOrCreatePause(e)

	for _, r := range a.Walls {
		factory.CreateWall(e, r.X, r.Z, r.W, r.H)
	}
	for _, o := range a.Obstacles {
		c := o.Center(0)
		factory.CreateObstacle(e, obstacleKind(o.Kind), c.X, c.Z, o.W, o.H)
	}
	factory.CreateNavGrid(e, a.Width, a.Depth, cfg.Navigation.CellSize)

	player := factory.CreatePlayer(e, a.PlayerSpawn.Position(), a.PlayerSpawn.Direction())
	if s.auto {
		donburi.Add(player, components.Autopilot, &components.AutopilotData{})
	}

	points := make([]components.SpawnPoint, 0, len(a.EnemySpawns))
	for _, sp := range a.EnemySpawns {
		points = append(points, components.SpawnPoint{Position: sp.Position(), Facing: sp.Direction()})
	}
	factory.CreateSpawner(e, s.waves, points)

	drops := make([]gamemath.Vec3, 0, len(a.WeaponSpawns))
	for _, sp := range a.WeaponSpawns {
		drops = append(drops, sp.Position())
	}
	factory.CreateWeaponFactory(e, drops, cfg.Weapons)

	systems.SubscribeSpawner(e, bus)
	registerSystems(e)

	s.ecs = e
	s.bus = bus
	s.player = player
	s.fixed = fixedSystems()
	s.accumulator = 0

	s.armPlayer()
	for _, fn := range s.onBuild {
		fn(s)
	}
	systems.StartWaves(e)
	if wave := s.Wave(); wave > s.bestWave {
		s.bestWave = wave
	}
}

// armPlayer hands out the starting weapons. The first one ends up current.
func (s *Session) armPlayer() {
	pos := components.Position(s.player)
	for _, name := range cfg.Player.StartingWeapons {
		def := cfg.WeaponByName(name)
		if def == nil {
			continue
		}
		w := factory.CreateWeapon(s.ecs, def, pos)
		systems.PickUpWeapon(s.ecs, s.player, w)
	}
	if len(components.Character.Get(s.player).Inventory) > 0 {
		systems.EquipWeapon(s.ecs, s.player, 0)
	}
}

func obstacleKind(kind string) components.HittableKind {
	switch kind {
	case arena.KindDynamic:
		return components.HitDynamicObstacle
	case arena.KindExplosive:
		return components.HitExplosiveObstacle
	}
	return components.HitStaticObstacle
}

func registerSystems(e *ecs.ECS) {
	// Input
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAutopilot)) // Must run before UpdatePlayer

	// Game systems wrapped with pause and outcome checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateShootLocks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacterMovement))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWeapons))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateExplosives))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWeaponFactory))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))

	// Effects run last so pulses started this frame are seen once
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
}

func fixedSystems() []ecs.System {
	return []ecs.System{
		systems.WithGameplayChecks(systems.UpdateImpulses),
		systems.WithGameplayChecks(systems.UpdateBodies),
		systems.WithGameplayChecks(systems.UpdateProjectiles),
	}
}

// Advance runs one frame of dt real seconds: zero or more fixed steps from
// the accumulator, then the per-frame systems. A reset requested during the
// frame rebuilds the world before Advance returns.
func (s *Session) Advance(dt float64) error {
	if s.closed {
		return ErrClosed
	}
	if dt < 0 {
		dt = 0
	}

	clock := components.ClockOf(s.ecs.World)
	scaled := dt * clock.TimeScale
	clock.Delta = scaled
	clock.Frame++

	if !systems.GetOrCreatePause(s.ecs).IsPaused {
		clock.Elapsed += scaled
		s.accumulator += scaled
	}

	steps := 0
	for s.accumulator >= clock.FixedDelta && steps < cfg.Physics.MaxFixedSteps {
		for _, sys := range s.fixed {
			sys(s.ecs)
		}
		s.accumulator -= clock.FixedDelta
		steps++
	}
	if steps == cfg.Physics.MaxFixedSteps {
		// Too far behind: drop the backlog rather than spiral.
		s.accumulator = math.Mod(s.accumulator, clock.FixedDelta)
	}

	s.ecs.Update()

	game := components.GameOf(s.ecs.World)
	if wave := s.Wave(); wave > s.bestWave {
		s.bestWave = wave
	}
	if game.Won && clock.TimeScale != cfg.Game.WinTimeScale {
		clock.TimeScale = cfg.Game.WinTimeScale
		log.Printf("Session %s won after %.1fs", s.ID, clock.Elapsed)
	}
	if game.ResetRequested {
		s.reset()
	}
	return nil
}

func (s *Session) reset() {
	s.kills += components.GameOf(s.ecs.World).Kills
	s.resets++
	s.bus.Close()
	log.Printf("Session %s reset (%d)", s.ID, s.resets)
	s.build()
}

// SetInput stores the player's controls for the next frame.
func (s *Session) SetInput(move, aim gamemath.Vec3, fire bool) {
	if components.Dying(s.player) {
		return
	}
	in := components.Player.Get(s.player)
	in.Move = move
	in.Aim = aim
	in.Fire = fire
}

// EquipNext cycles the player to the next weapon.
func (s *Session) EquipNext() bool {
	if components.Dying(s.player) {
		return false
	}
	return systems.EquipNextWeapon(s.ecs, s.player)
}

func (s *Session) SetPaused(paused bool) { systems.SetPaused(s.ecs, paused) }

// SetAutopilot hands the player to the built-in AI or back to input. The
// choice survives resets.
func (s *Session) SetAutopilot(on bool) {
	s.auto = on
	if !s.player.Valid() {
		return
	}
	has := s.player.HasComponent(components.Autopilot)
	switch {
	case on && !has:
		donburi.Add(s.player, components.Autopilot, &components.AutopilotData{})
	case !on && has:
		donburi.Remove[components.AutopilotData](s.player, components.Autopilot)
	}
}

func (s *Session) Autopilot() bool { return s.auto }

func (s *Session) Player() *donburi.Entry { return s.player }
func (s *Session) World() donburi.World    { return s.ecs.World }
func (s *Session) ECS() *ecs.ECS           { return s.ecs }
func (s *Session) Bus() *events.Bus        { return s.bus }
func (s *Session) Arena() *arena.Arena     { return s.arena }

// Won reports whether every wave of the current world was cleared.
func (s *Session) Won() bool {
	return components.GameOf(s.ecs.World).Won
}

// Resets is the number of times the player died and the world was rebuilt.
func (s *Session) Resets() int { return s.resets }

// Wave is the 1-based number of the current wave, 0 before the first.
func (s *Session) Wave() int {
	if sp, ok := components.Spawner.First(s.ecs.World); ok {
		return components.Spawner.Get(sp).WaveNumber()
	}
	return 0
}

func (s *Session) Elapsed() float64 {
	return components.ClockOf(s.ecs.World).Elapsed
}

func (s *Session) Stats() Stats {
	return Stats{
		BestWave: s.bestWave,
		Kills:    s.kills + components.GameOf(s.ecs.World).Kills,
		Won:      s.Won(),
		Resets:   s.resets,
		Elapsed:  s.Elapsed(),
	}
}

// Close stops event delivery. Advance fails afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.bus.Close()
}
