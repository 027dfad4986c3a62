package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/geometry"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyHit lands damage on target at point, travelling along dir. What
// happens depends on the target's hittable kind; entities without one
// ignore the hit.
func ApplyHit(ecs *ecs.ECS, target *donburi.Entry, damage int, point, dir gamemath.Vec3) {
	if target == nil || !target.Valid() || !target.HasComponent(components.Hittable) {
		return
	}

	switch components.Hittable.Get(target).Kind {
	case components.HitPlayer, components.HitEnemy:
		hitCharacter(ecs, target, damage, point, dir)
	case components.HitStaticObstacle:
		deformObstacle(ecs, target, point, dir)
	case components.HitDynamicObstacle:
		pushObstacle(target, damage, point, dir)
	case components.HitExplosiveObstacle:
		pushObstacle(target, damage, point, dir)
		igniteExplosive(ecs, target)
	}
}

// applyHits lands the same damage on every hit.
func applyHits(ecs *ecs.ECS, hits []geometry.Hit, damage int) {
	for _, h := range hits {
		ApplyHit(ecs, h.Target, damage, h.Point, h.Direction)
	}
}

func hitCharacter(ecs *ecs.ECS, e *donburi.Entry, damage int, point, dir gamemath.Vec3) {
	// Hits on a dying character are ignored.
	if components.Dying(e) {
		return
	}

	hp := components.Health.Get(e)
	hp.Current -= damage
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	if e.HasComponent(components.Highlight) {
		components.Highlight.Get(e).Pulse(cfg.Combat.HitHighlightStrength, cfg.Combat.HitHighlightTime)
	}
	bleed(ecs, e, point, dir)

	bus := busOf(ecs.World)
	if e.HasComponent(tags.Player) {
		effectsOf(ecs.World).Cue(fx.CuePlayerHurt, point)
		events.Publish(bus, events.PlayerHit, events.PlayerEvent{Player: e, Point: point, Damage: damage})
	} else {
		events.Publish(bus, events.EnemyHit, events.EnemyEvent{Enemy: e, Point: point, Damage: damage})
	}

	if hp.Current == 0 {
		startDeathSequence(ecs, e)
	}
}

// bleed replays the character's blood emitter at the hit, creating it on
// first use.
func bleed(ecs *ecs.ECS, e *donburi.Entry, point, dir gamemath.Vec3) {
	if !e.HasComponent(components.Character) {
		return
	}
	ch := components.Character.Get(e)
	if ch.Blood == nil {
		ch.Blood = effectsOf(ecs.World).NewEmitter(fx.ParticleBlood)
		if ch.Blood == nil {
			return
		}
	}
	ch.Blood.Place(point, dir)
	ch.Blood.Play()
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	// Out of every query right away, so nothing can target the corpse.
	removeFromSpace(ecs.World, e)
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Enemy.CorpseTime})

	if e.HasComponent(components.Character) {
		components.Character.Get(e).Velocity = gamemath.Vec3{}
	}

	game := components.GameOf(ecs.World)
	if e.HasComponent(tags.Player) {
		if game != nil {
			game.ResetRequested = true
		}
		events.Publish(busOf(ecs.World), events.PlayerKilled, events.PlayerEvent{Player: e})
		return
	}

	if game != nil {
		game.Kills++
	}
	events.Publish(busOf(ecs.World), events.EnemyKilled, events.EnemyEvent{Enemy: e})
}
