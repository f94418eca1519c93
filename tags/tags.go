package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Projectile       = donburi.NewTag().SetName("Projectile")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags double as collision layers.
const (
	ResolvSolid            = "solid"
	ResolvPlayer           = "player"
	ResolvPlayerProjectile = "player_projectile"
	ResolvEnemy            = "enemy"
	ResolvEnemyProjectile  = "enemy_projectile"
)
