package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
)

func TestEnemyWalksAroundWallToPlayer(t *testing.T) {
	e := newTestECS(t, nil, nil)
	factory.CreateWall(e, 10, 24, 18, 1)
	factory.CreateNavGrid(e, 64, 64, 1)
	player := factory.CreatePlayer(e, at(20, 30), north)
	enemy := armedEnemy(e, "Grunt", at(20, 20))

	reached := false
	for i := 0; i < 300; i++ {
		step(e, 0.05)
		UpdateEnemies(e)
		UpdateCharacterMovement(e)
		if components.Position(enemy).Distance(components.Position(player)) < 2 {
			reached = true
			break
		}
	}
	if !reached {
		t.Errorf("enemy stuck at %v, player at %v", components.Position(enemy), components.Position(player))
	}
}

func TestEnemyChargesStraightWithoutGrid(t *testing.T) {
	e := newTestECS(t, nil, nil)
	factory.CreatePlayer(e, at(20, 30), north)
	enemy := armedEnemy(e, "Grunt", at(20, 20))

	step(e, 0.05)
	UpdateEnemies(e)
	v := components.Character.Get(enemy).Velocity
	if v.X != 0 || v.Z <= 0 {
		t.Errorf("velocity = %v, want straight at the player", v)
	}
}

func TestAutopilotFetchesWeaponBehindWall(t *testing.T) {
	e := newTestECS(t, nil, nil)
	factory.CreateWall(e, 10, 24, 18, 1)
	factory.CreateNavGrid(e, 64, 64, 1)
	p := factory.CreatePlayer(e, at(20, 20), north)
	donburi.Add(p, components.Autopilot, &components.AutopilotData{})
	factory.CreateWeapon(e, cfg.WeaponByName("Pistol"), at(20, 30))

	for i := 0; i < 500 && len(components.Character.Get(p).Inventory) == 0; i++ {
		step(e, 0.02)
		UpdateAutopilot(e)
		UpdatePlayer(e)
		UpdateCharacterMovement(e)
		UpdatePickups(e)
	}
	if len(components.Character.Get(p).Inventory) != 1 {
		t.Errorf("autopilot never reached the weapon; stopped at %v", components.Position(p))
	}
}
