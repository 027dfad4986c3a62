package core

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/game"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// trackFn marks a network entity for sync.
type trackFn func(world donburi.World, entity *donburi.Entity) error

func esyncTrack(world donburi.World, entity *donburi.Entity) error {
	e := world.Entry(*entity)
	switch {
	case e.HasComponent(netcomponents.NetEnemy):
		return srvsync.NetworkSync(world, entity, srvsync.WithInterp(netcomponents.NetEnemy))
	case e.HasComponent(netcomponents.NetPlayer):
		return srvsync.NetworkSync(world, entity, srvsync.WithInterp(netcomponents.NetPlayer))
	}
	return srvsync.NetworkSync(world, entity, netcomponents.NetWave)
}

// mirror copies the session state into the network world that esync
// serializes. The session world is rebuilt on every reset; the network
// world lives as long as the server.
type mirror struct {
	world   donburi.World
	track   trackFn
	enemies map[donburi.Entity]donburi.Entity // session entity -> network entity
	player  *donburi.Entity
	wave    *donburi.Entity
}

func newMirror(world donburi.World, track trackFn) *mirror {
	return &mirror{
		world:   world,
		track:   track,
		enemies: make(map[donburi.Entity]donburi.Entity),
	}
}

// attach subscribes to the session bus. Call it from Session.OnBuild.
func (m *mirror) attach(s *game.Session) {
	m.clearEnemies()

	bus := s.Bus()
	events.Subscribe(bus, events.EnemySpawned, func(ev events.EnemyEvent) {
		m.addEnemy(ev.Enemy)
	})
	events.Subscribe(bus, events.EnemyKilled, func(ev events.EnemyEvent) {
		m.removeEnemy(ev.Enemy.Entity())
	})
}

func (m *mirror) create(c donburi.IComponentType) *donburi.Entity {
	entity := m.world.Create(c)
	if err := m.track(m.world, &entity); err != nil {
		logSyncError(err)
	}
	return &entity
}

func (m *mirror) addEnemy(e *donburi.Entry) {
	if _, ok := m.enemies[e.Entity()]; ok {
		return
	}
	m.enemies[e.Entity()] = *m.create(netcomponents.NetEnemy)
}

func (m *mirror) removeEnemy(sessionEntity donburi.Entity) {
	net, ok := m.enemies[sessionEntity]
	if !ok {
		return
	}
	delete(m.enemies, sessionEntity)
	if m.world.Valid(net) {
		m.world.Remove(net)
	}
}

func (m *mirror) clearEnemies() {
	for e := range m.enemies {
		m.removeEnemy(e)
	}
}

// sync writes the current session state into the network components.
// applied is the last input sequence the session consumed.
func (m *mirror) sync(s *game.Session, applied uint32) {
	w := s.World()

	for sessionEntity, net := range m.enemies {
		if !w.Valid(sessionEntity) || !m.world.Valid(net) {
			m.removeEnemy(sessionEntity)
			continue
		}
		e := w.Entry(sessionEntity)
		if !e.HasComponent(components.Enemy) {
			m.removeEnemy(sessionEntity)
			continue
		}
		netcomponents.NetEnemy.Set(m.world.Entry(net), enemyState(e))
	}

	if m.player == nil {
		m.player = m.create(netcomponents.NetPlayer)
	}
	netcomponents.NetPlayer.Set(m.world.Entry(*m.player), playerState(s, applied))

	if m.wave == nil {
		m.wave = m.create(netcomponents.NetWave)
	}
	netcomponents.NetWave.Set(m.world.Entry(*m.wave), waveState(s))
}

func enemyState(e *donburi.Entry) *netcomponents.NetEnemyData {
	pos := components.Position(e)
	ch := components.Character.Get(e)
	hp := components.Health.Get(e)
	out := &netcomponents.NetEnemyData{
		X:         pos.X,
		Z:         pos.Z,
		Facing:    gamemath.Yaw(ch.Facing),
		TypeName:  components.Enemy.Get(e).Type.Name,
		Health:    hp.Current,
		MaxHealth: hp.Max,
	}
	if w := ch.Weapon(); w != nil {
		out.Weapon = components.Weapon.Get(w).Def.Name
	}
	return out
}

func playerState(s *game.Session, applied uint32) *netcomponents.NetPlayerData {
	p := s.Player()
	out := &netcomponents.NetPlayerData{Autopilot: s.Autopilot(), LastInput: applied}
	if !p.Valid() {
		return out
	}
	pos := components.Position(p)
	ch := components.Character.Get(p)
	hp := components.Health.Get(p)
	out.X, out.Z = pos.X, pos.Z
	out.Facing = gamemath.Yaw(ch.Facing)
	out.Health, out.MaxHealth = hp.Current, hp.Max
	if w := ch.Weapon(); w != nil {
		wd := components.Weapon.Get(w)
		out.Weapon = wd.Def.Name
		out.Ammo = wd.CurrentAmmo
	}
	return out
}

func waveState(s *game.Session) *netcomponents.NetWaveData {
	stats := s.Stats()
	out := &netcomponents.NetWaveData{
		Kills:   stats.Kills,
		Resets:  stats.Resets,
		Elapsed: stats.Elapsed,
	}
	if e, ok := components.Spawner.First(s.World()); ok {
		sp := components.Spawner.Get(e)
		out.Wave = sp.WaveNumber()
		out.Waves = len(sp.Waves)
		out.Live = sp.EnemyCount()
		if wave := sp.Wave(); wave != nil {
			out.EnemyCount = wave.EnemyCount
		}
		switch sp.State {
		case components.WaveActive:
			out.State = netcomponents.WaveStateActive
		case components.WavesCleared:
			out.State = netcomponents.WaveStateCleared
		}
	}
	return out
}
