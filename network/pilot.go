package network

import (
	"math"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
)

// Pilot turns the replicated state into controls for a remote player.
type Pilot struct {
	// FireRange is how close an enemy must be before the pilot shoots.
	FireRange float64
	// KeepAway is the distance the pilot backs off to.
	KeepAway float64

	held bool
}

// Steer aims at the nearest enemy, fires when it is in range and backs
// away when it gets too close. Without a player or enemies it idles.
// The trigger is released every other call since the server only fires on
// a press. The returned input has no sequence number yet.
func (p *Pilot) Steer(r *Replica) messages.PlayerInput {
	var in messages.PlayerInput
	player, ok := r.Player()
	if !ok || player.Health <= 0 {
		p.held = false
		return in
	}
	enemy, ok := r.NearestEnemy(player.X, player.Z)
	if !ok {
		p.held = false
		return in
	}

	in.AimX, in.AimZ = enemy.X, enemy.Z
	dx, dz := enemy.X-player.X, enemy.Z-player.Z
	dist := math.Hypot(dx, dz)
	in.Fire = dist <= p.FireRange && !p.held
	p.held = in.Fire
	if dist < p.KeepAway && dist > 0 {
		in.MoveX, in.MoveZ = -dx/dist, -dz/dist
	}
	in.EquipNext = player.Ammo == 0 && usesAmmo(player.Weapon)
	return in
}

func usesAmmo(weapon string) bool {
	def := cfg.WeaponByName(weapon)
	return def != nil && def.Kind != cfg.WeaponMelee
}
