package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Ground     = donburi.NewTag().SetName("Ground")
	Trap       = donburi.NewTag().SetName("Trap")
	DeathZone  = donburi.NewTag().SetName("DeathZone")
	Item       = donburi.NewTag().SetName("Item")
	FinishLine = donburi.NewTag().SetName("FinishLine")
	Launcher   = donburi.NewTag().SetName("Launcher")
	Projectile = donburi.NewTag().SetName("Projectile")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvTrap       = "trap"
	ResolvDeadZone   = "deadzone"
	ResolvItem       = "item"
	ResolvFinishLine = "finishline"
	ResolvProjectile = "Projectile"
)
