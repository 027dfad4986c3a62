package game

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/arena"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func killPlayer(s *Session) {
	systems.ApplyHit(s.ECS(), s.Player(), 1000, components.Position(s.Player()), gamemath.V3(0, 0, 1))
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{
			name: "no waves",
			opts: Options{Waves: []cfg.WaveConfig{}},
			want: cfg.ErrNoWaves,
		},
		{
			name: "zero probabilities",
			opts: Options{Waves: []cfg.WaveConfig{{
				Enemies:    []cfg.WaveEnemy{{Kind: "Grunt", Probability: 0}},
				EnemyCount: 1,
			}}},
			want: cfg.ErrNoProbability,
		},
		{
			name: "unknown enemy",
			opts: Options{Waves: []cfg.WaveConfig{{
				Enemies:    []cfg.WaveEnemy{{Kind: "Ghost", Probability: 1}},
				EnemyCount: 1,
			}}},
			want: cfg.ErrUnknownEnemy,
		},
		{
			name: "no enemy spawns",
			opts: Options{Arena: &arena.Arena{Name: "empty", Width: 8, Depth: 8}},
			want: arena.ErrNoEnemySpawns,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewSessionArmsPlayerAndStartsFirstWave(t *testing.T) {
	s := newSession(t, Options{})

	ch := components.Character.Get(s.Player())
	if len(ch.Inventory) != len(cfg.Player.StartingWeapons) {
		t.Fatalf("inventory = %d, want %d", len(ch.Inventory), len(cfg.Player.StartingWeapons))
	}
	if got := components.Weapon.Get(ch.Weapon()).Def.Name; got != cfg.Player.StartingWeapons[0] {
		t.Errorf("current weapon = %s, want %s", got, cfg.Player.StartingWeapons[0])
	}
	if s.Wave() != 1 {
		t.Errorf("wave = %d, want 1", s.Wave())
	}
	if pos := components.Position(s.Player()); pos.X != 12 || pos.Z != 12 {
		t.Errorf("player at %v, want the arena's player spawn", pos)
	}
	if s.Player().HasComponent(components.Autopilot) {
		t.Error("autopilot is off unless asked for")
	}
}

func TestAdvanceRunsFixedStepsFromAccumulator(t *testing.T) {
	s := newSession(t, Options{})
	p := factory.CreateProjectile(s.ECS(), gamemath.V3(12, 50, 8), gamemath.Vec3{}, 1, 1, tags.ExplosionMask, donburi.Null)
	proj := components.Projectile.Get(p)

	if err := s.Advance(cfg.Physics.FixedStep / 2); err != nil {
		t.Fatal(err)
	}
	if proj.Position.Y != 50 {
		t.Fatalf("projectile moved before a full fixed step: %v", proj.Position)
	}

	s.Advance(cfg.Physics.FixedStep * 0.75)
	if proj.Position.Y >= 50 {
		t.Fatal("projectile should fall once a fixed step accumulated")
	}

	// A long stall runs a bounded number of steps and drops the rest.
	s.Advance(5)
	if s.accumulator >= cfg.Physics.FixedStep {
		t.Errorf("accumulator = %v, backlog should be dropped", s.accumulator)
	}
}

func TestPauseStopsTime(t *testing.T) {
	s := newSession(t, Options{})
	s.SetPaused(true)
	s.Advance(1)
	if s.Elapsed() != 0 {
		t.Errorf("elapsed while paused = %v", s.Elapsed())
	}
	s.SetPaused(false)
	s.Advance(0.25)
	if s.Elapsed() != 0.25 {
		t.Errorf("elapsed = %v, want 0.25", s.Elapsed())
	}
}

func TestPlayerDeathRebuildsWorld(t *testing.T) {
	s := newSession(t, Options{})
	builds := 0
	s.OnBuild(func(*Session) { builds++ })
	if builds != 1 {
		t.Fatalf("OnBuild should run for the current world, ran %d times", builds)
	}

	old, oldBus := s.Player(), s.Bus()
	killPlayer(s)
	if err := s.Advance(0.01); err != nil {
		t.Fatal(err)
	}

	if s.Resets() != 1 || builds != 2 {
		t.Fatalf("resets = %d builds = %d, want 1 and 2", s.Resets(), builds)
	}
	if s.Player() == old || components.Dying(s.Player()) {
		t.Error("reset should bring a fresh player")
	}
	if got := components.Health.Get(s.Player()).Current; got != cfg.Player.Health {
		t.Errorf("health = %d, want %d", got, cfg.Player.Health)
	}
	if !oldBus.Closed() || s.Bus().Closed() {
		t.Error("the old world's bus should be closed and the new one open")
	}
	if s.Wave() != 1 || s.Elapsed() != 0 {
		t.Errorf("wave = %d elapsed = %v, want a fresh start", s.Wave(), s.Elapsed())
	}
	if st := s.Stats(); st.Resets != 1 || st.BestWave != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestClearingEveryWaveSlowsTime(t *testing.T) {
	s := newSession(t, Options{Waves: []cfg.WaveConfig{{
		Enemies:    []cfg.WaveEnemy{{Kind: "Grunt", Probability: 1}},
		EnemyCount: 1,
	}}})

	sp, _ := components.Spawner.First(s.World())
	spawner := components.Spawner.Get(sp)
	for i := 0; i < 100 && spawner.EnemyCount() == 0; i++ {
		s.Advance(0.01)
	}
	if spawner.EnemyCount() != 1 {
		t.Fatal("the wave never spawned its enemy")
	}

	enemy := spawner.Live[0]
	systems.ApplyHit(s.ECS(), enemy, 1000, components.Position(enemy), gamemath.V3(0, 0, 1))
	s.Advance(0.01)

	if !s.Won() {
		t.Fatal("session should be won")
	}
	if got := components.ClockOf(s.World()).TimeScale; got != cfg.Game.WinTimeScale {
		t.Errorf("time scale = %v, want %v", got, cfg.Game.WinTimeScale)
	}
	st := s.Stats()
	if !st.Won || st.Kills != 1 || st.BestWave != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestAutopilotSurvivesReset(t *testing.T) {
	s := newSession(t, Options{Autopilot: true})
	if !s.Player().HasComponent(components.Autopilot) {
		t.Fatal("autopilot requested but not attached")
	}

	s.SetAutopilot(false)
	if s.Autopilot() || s.Player().HasComponent(components.Autopilot) {
		t.Fatal("autopilot should be removed")
	}

	s.SetAutopilot(true)
	killPlayer(s)
	s.Advance(0.01)
	if !s.Player().HasComponent(components.Autopilot) {
		t.Error("the rebuilt player should keep the autopilot")
	}
}

func TestEquipNextCyclesPlayerWeapons(t *testing.T) {
	s := newSession(t, Options{})
	ch := components.Character.Get(s.Player())
	if !s.EquipNext() || ch.CurrentWeapon != 1 {
		t.Fatalf("current = %d, want 1", ch.CurrentWeapon)
	}
	killPlayer(s)
	if s.EquipNext() {
		t.Error("a dying player cannot switch weapons")
	}
}

func TestClosedSessionRefusesToAdvance(t *testing.T) {
	s, err := NewSession(Options{})
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	s.Close()
	if err := s.Advance(0.1); !errors.Is(err, ErrClosed) {
		t.Errorf("Advance after Close = %v, want ErrClosed", err)
	}
}
