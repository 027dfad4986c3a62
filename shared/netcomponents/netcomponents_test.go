package netcomponents

import (
	"math"
	"testing"
)

func TestLerpNetEnemy(t *testing.T) {
	from := NetEnemyData{X: 0, Z: 0, Health: 40, TypeName: "Grunt"}
	to := NetEnemyData{X: 10, Z: -4, Health: 20, TypeName: "Grunt"}

	got := LerpNetEnemy(from, to, 0.5)
	if got.X != 5 || got.Z != -2 {
		t.Errorf("position = (%v, %v), want (5, -2)", got.X, got.Z)
	}
	if got.Health != 20 {
		t.Errorf("health = %d, want the newer value 20", got.Health)
	}
}

func TestLerpAngleTakesShortWay(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	got := lerpAngle(from, to, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("lerpAngle = %v, want ±π", got)
	}
}

func TestLerpNetPlayerKeepsDiscreteFields(t *testing.T) {
	from := NetPlayerData{X: 1, Weapon: "Knife", Ammo: 0}
	to := NetPlayerData{X: 3, Weapon: "Pistol", Ammo: 12}
	got := LerpNetPlayer(from, to, 0.25)
	if got.X != 1.5 || got.Weapon != "Pistol" || got.Ammo != 12 {
		t.Errorf("got %+v", got)
	}
}
