package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/fx/mocks"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"go.uber.org/mock/gomock"
)

func TestPlayerHealthClampsAndDiesOnce(t *testing.T) {
	e := newTestECS(t, nil, nil)
	p := factory.CreatePlayer(e, at(10, 10), north)
	pos := components.Position(p)
	hits := record(e, events.PlayerHit)
	kills := record(e, events.PlayerKilled)

	ApplyHit(e, p, 30, pos, north)
	if got := components.Health.Get(p).Current; got != 70 {
		t.Fatalf("health after 30 damage = %d, want 70", got)
	}

	ApplyHit(e, p, 80, pos, north)
	if got := components.Health.Get(p).Current; got != 0 {
		t.Fatalf("health after overkill = %d, want 0", got)
	}
	if len(*kills) != 1 {
		t.Fatalf("PlayerKilled published %d times, want 1", len(*kills))
	}
	if !components.GameOf(e.World).ResetRequested {
		t.Error("player death should request a reset")
	}

	ApplyHit(e, p, 10, pos, north)
	if len(*hits) != 2 || len(*kills) != 1 {
		t.Errorf("hits on a dead player should be ignored: hits=%d kills=%d", len(*hits), len(*kills))
	}
	if queryWorld(e.World).CheckSphere(pos, 0.2, tags.ResolvPlayer) {
		t.Error("dead player should be out of collision queries")
	}
}

func TestHealingClampsToMax(t *testing.T) {
	e := newTestECS(t, nil, nil)
	enemy := factory.CreateEnemy(e, "Grunt", at(5, 5), north)

	ApplyHit(e, enemy, -50, components.Position(enemy), north)
	hp := components.Health.Get(enemy)
	if hp.Current != hp.Max {
		t.Errorf("health = %d, want max %d", hp.Current, hp.Max)
	}
}

func TestEnemyDeathCountsOnceAndIsRemoved(t *testing.T) {
	e := newTestECS(t, nil, nil)
	enemy := factory.CreateEnemy(e, "Grunt", at(5, 5), north)
	EquipWeapon(e, enemy, 0)
	weapon := components.Character.Get(enemy).Inventory[0]
	enemyID, weaponID := enemy.Entity(), weapon.Entity()
	kills := record(e, events.EnemyKilled)

	ApplyHit(e, enemy, 100, components.Position(enemy), north)
	ApplyHit(e, enemy, 100, components.Position(enemy), north)

	if len(*kills) != 1 {
		t.Fatalf("EnemyKilled published %d times, want 1", len(*kills))
	}
	if got := components.GameOf(e.World).Kills; got != 1 {
		t.Errorf("kills = %d, want 1", got)
	}
	if !enemy.HasComponent(components.Death) {
		t.Fatal("enemy should be dying")
	}

	step(e, 0.016)
	UpdateDeaths(e)
	if alive(e, enemyID) || alive(e, weaponID) {
		t.Error("corpse and its weapon should leave the world")
	}
}

func TestBloodEmitterIsReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	blood := mocks.NewMockEmitter(ctrl)

	sink.EXPECT().NewEmitter(fx.ParticleBlood).Return(blood).Times(1)
	blood.EXPECT().Place(gomock.Any(), gomock.Any()).Times(2)
	blood.EXPECT().Play().Times(2)

	e := newTestECS(t, sink, nil)
	enemy := factory.CreateEnemy(e, "Brute", at(5, 5), north)

	ApplyHit(e, enemy, 1, components.Position(enemy), north)
	ApplyHit(e, enemy, 1, components.Position(enemy), north)
}

func TestHitHighlightPulse(t *testing.T) {
	e := newTestECS(t, nil, nil)
	enemy := factory.CreateEnemy(e, "Brute", at(5, 5), north)

	ApplyHit(e, enemy, 1, components.Position(enemy), north)
	h := components.Highlight.Get(enemy)
	if !h.Active || h.Strength != 1 {
		t.Fatalf("highlight after hit = %+v", *h)
	}

	step(e, 0.05)
	UpdateEffects(e)
	if !h.Active {
		t.Fatal("highlight ended early")
	}

	step(e, 0.06)
	UpdateEffects(e)
	if h.Active {
		t.Fatal("highlight should end once its time has passed")
	}

	step(e, 0.016)
	UpdateEffects(e)
	if h.Strength != 0 {
		t.Errorf("strength = %v, want 0 after the pulse", h.Strength)
	}
}
