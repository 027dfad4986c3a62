package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Weapon     = donburi.NewTag().SetName("Weapon")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvObstacle   = "Obstacle"
	ResolvPickup     = "Pickup"
	ResolvProjectile = "Projectile"
)

// Query masks. A mask lists the resolv tags a query may see.
var (
	// PlayerHitMask is what the player's weapons can strike. Walls are
	// included so they block rays even though they take no damage.
	PlayerHitMask = []string{ResolvEnemy, ResolvObstacle, ResolvSolid}
	EnemyHitMask  = []string{ResolvPlayer, ResolvObstacle, ResolvSolid}

	// ExplosionMask is what blasts damage.
	ExplosionMask = []string{ResolvPlayer, ResolvEnemy, ResolvObstacle}

	// ProjectileContactMask is what a projectile bursts on.
	ProjectileContactMask = []string{ResolvPlayer, ResolvEnemy, ResolvObstacle, ResolvSolid}

	// SpawnBlockMask is what keeps a spawn point occupied.
	SpawnBlockMask  = []string{ResolvPlayer, ResolvEnemy, ResolvObstacle, ResolvSolid}
	PickupBlockMask = []string{ResolvPickup, ResolvPlayer, ResolvEnemy, ResolvObstacle, ResolvSolid}

	// MoveBlockMask is what characters cannot walk through.
	MoveBlockMask = []string{ResolvSolid, ResolvObstacle}
)
