package systems

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
)

func TestDeformationLatchesAndDecays(t *testing.T) {
	e := newTestECS(t, nil, nil)
	obs := factory.CreateObstacle(e, components.HitStaticObstacle, 20, 20, 2, 2)
	def := components.Deformation.Get(obs)
	step(e, 3)

	ApplyHit(e, obs, 10, gamemath.V3(19, 0.5, 20), gamemath.V3(1, 0, 0))
	if !def.Active || def.Strength != 1 {
		t.Fatalf("deformation = %+v, want active at full strength", def)
	}
	if def.Timestamp != 3 || def.Center.X != 19 {
		t.Errorf("deformation recorded at %v / %v", def.Timestamp, def.Center)
	}

	ApplyHit(e, obs, 10, gamemath.V3(21, 0.5, 20), gamemath.V3(-1, 0, 0))
	if def.Center.X != 19 {
		t.Error("a hit while the dent is showing should be ignored")
	}

	step(e, cfg.Hazard.DeformationDecayTime/2)
	UpdateEffects(e)
	if math.Abs(def.Strength-0.5) > 1e-3 {
		t.Errorf("strength halfway = %v, want 0.5", def.Strength)
	}

	step(e, cfg.Hazard.DeformationDecayTime)
	UpdateEffects(e)
	if def.Active || def.Strength != 0 {
		t.Fatalf("deformation should have decayed, got %+v", def)
	}

	ApplyHit(e, obs, 10, gamemath.V3(21, 0.5, 20), gamemath.V3(-1, 0, 0))
	if !def.Active || def.Center.X != 21 {
		t.Error("a hit after decay should start a new dent")
	}
	if obs.HasComponent(components.Health) {
		t.Error("obstacles have no health")
	}
}

func TestImpulsePushesForItsDuration(t *testing.T) {
	e := newTestECS(t, nil, nil)
	obs := factory.CreateObstacle(e, components.HitDynamicObstacle, 20, 20, 2, 2)
	body := components.Body.Get(obs)
	imp := components.Impulse.Get(obs)

	ApplyHit(e, obs, 10, gamemath.V3(19, 0.5, 20), gamemath.V3(1, 0, 0))
	if !imp.Active || imp.Force.X != 10*cfg.Hazard.ImpulseFactor {
		t.Fatalf("impulse = %+v", imp)
	}

	UpdateImpulses(e)
	if body.Force.X <= 0 {
		t.Fatalf("body force = %v, want a push along +X", body.Force)
	}
	UpdateBodies(e)
	if body.Velocity.X <= 0 {
		t.Fatalf("velocity = %v, want motion along +X", body.Velocity)
	}
	if body.Force.X != 0 {
		t.Error("forces should be cleared once integrated")
	}
	if got := components.Position(obs).X; got <= 20 {
		t.Errorf("obstacle x = %v, want it pushed past 20", got)
	}

	steps := int(math.Ceil(cfg.Hazard.ImpulseDuration/cfg.Physics.FixedStep)) + 1
	for i := 0; i < steps; i++ {
		UpdateImpulses(e)
		UpdateBodies(e)
	}
	if imp.Active {
		t.Error("impulse should have expired")
	}
	UpdateImpulses(e)
	if body.Force.X != 0 {
		t.Error("an expired impulse should not push")
	}
}

func TestImpulseStopsAtWall(t *testing.T) {
	e := newTestECS(t, nil, nil)
	obs := factory.CreateObstacle(e, components.HitDynamicObstacle, 20, 20, 2, 2)
	factory.CreateWall(e, 21, 10, 1, 20)
	body := components.Body.Get(obs)

	ApplyHit(e, obs, 100, gamemath.V3(19, 0.5, 20), gamemath.V3(1, 0, 0))
	UpdateImpulses(e)
	UpdateBodies(e)

	if body.Velocity.X != 0 {
		t.Errorf("velocity = %v, want stopped by the wall", body.Velocity)
	}
	if got := components.Position(obs).X; got != 20 {
		t.Errorf("obstacle x = %v, want 20", got)
	}
}

func TestExplosiveFuseDetonates(t *testing.T) {
	sink := &cueSink{}
	e := newTestECS(t, sink, nil)
	barrel := factory.CreateObstacle(e, components.HitExplosiveObstacle, 20, 20, 1, 1)
	barrelID := barrel.Entity()
	near := factory.CreateEnemy(e, "Grunt", at(21.5, 20), north)
	far := factory.CreatePlayer(e, at(40, 40), north)
	ex := components.Explosive.Get(barrel)

	ApplyHit(e, barrel, 5, gamemath.V3(19.5, 0.5, 20), gamemath.V3(1, 0, 0))
	if !ex.Started || ex.Fuse != cfg.Hazard.ExplosionTime {
		t.Fatalf("explosive = %+v, want a lit fuse", ex)
	}
	if !components.Impulse.Get(barrel).Active {
		t.Error("explosives are pushed like dynamic obstacles")
	}

	step(e, 1)
	UpdateExplosives(e)
	ApplyHit(e, barrel, 5, gamemath.V3(19.5, 0.5, 20), gamemath.V3(1, 0, 0))
	if ex.Fuse != cfg.Hazard.ExplosionTime-1 {
		t.Errorf("fuse = %v, a second hit must not relight it", ex.Fuse)
	}
	if sink.count(fx.CueFuseLit) != 1 {
		t.Errorf("fuse lit cues = %d, want 1", sink.count(fx.CueFuseLit))
	}

	step(e, cfg.Hazard.ExplosionTime)
	UpdateExplosives(e)

	if alive(e, barrelID) {
		t.Error("the charge should be gone after detonating")
	}
	if !components.Dying(near) {
		t.Errorf("enemy in the blast has %d health, want dead", components.Health.Get(near).Current)
	}
	if got := components.Health.Get(far).Current; got != cfg.Player.Health {
		t.Errorf("player out of the blast has %d health", got)
	}
	if sink.count(fx.CueExplosion) != 1 {
		t.Errorf("explosion cues = %d, want 1", sink.count(fx.CueExplosion))
	}
}

func TestChainedExplosivesEachBlowOnce(t *testing.T) {
	e := newTestECS(t, nil, nil)
	first := factory.CreateObstacle(e, components.HitExplosiveObstacle, 20, 20, 1, 1)
	firstID := first.Entity()
	second := factory.CreateObstacle(e, components.HitExplosiveObstacle, 22, 20, 1, 1)

	ApplyHit(e, first, 5, components.Position(first), north)
	step(e, cfg.Hazard.ExplosionTime)
	UpdateExplosives(e)

	if alive(e, firstID) {
		t.Fatal("first charge should have detonated")
	}
	ex := components.Explosive.Get(second)
	if !ex.Started || ex.Fuse != cfg.Hazard.ExplosionTime {
		t.Fatalf("blast should light the neighbour, got %+v", ex)
	}
}

func TestWeaponFactoryDropsOnFreePoints(t *testing.T) {
	e := newTestECS(t, nil, nil)
	factory.CreateWeaponFactory(e, []gamemath.Vec3{at(30, 30)}, []*cfg.WeaponDef{cfg.WeaponByName("Pistol")})

	countWeapons := func() int {
		n := 0
		components.Weapon.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}

	step(e, cfg.WeaponFactory.Period/2)
	UpdateWeaponFactory(e)
	if countWeapons() != 0 {
		t.Fatal("dropped before the period elapsed")
	}

	step(e, cfg.WeaponFactory.Period/2)
	UpdateWeaponFactory(e)
	if countWeapons() != 1 {
		t.Fatalf("weapons = %d after one period, want 1", countWeapons())
	}
	var wd *components.WeaponData
	components.Weapon.Each(e.World, func(w *donburi.Entry) { wd = components.Weapon.Get(w) })
	if wd.IsPicked || !wd.Full() {
		t.Errorf("dropped weapon = %+v, want a full pickup", wd)
	}

	step(e, cfg.WeaponFactory.Period)
	UpdateWeaponFactory(e)
	if countWeapons() != 1 {
		t.Errorf("weapons = %d, an occupied point must be skipped", countWeapons())
	}
}
