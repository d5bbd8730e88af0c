package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/leveldata"
)

// LauncherData fires a projectile from its origin every Interval seconds.
type LauncherData struct {
	leveldata.Launcher
	Cooldown float64 // seconds until the next shot
}

var Launcher = donburi.NewComponentType[LauncherData]()

// ProjectileData is an enemy shot. It flies until it hits something or has
// lived longer than ResetTime; either way it is removed that tick.
type ProjectileData struct {
	DirX, DirY float64
	Speed      float64
	ResetTime  float64
	Lifetime   float64
}

// Advance ages the projectile by dt and returns how far it moves this tick.
// expired is true once the lifetime exceeds ResetTime.
func (p *ProjectileData) Advance(dt float64) (dx, dy float64, expired bool) {
	step := p.Speed * dt
	p.Lifetime += dt
	return p.DirX * step, p.DirY * step, p.Lifetime > p.ResetTime
}

var Projectile = donburi.NewComponentType[ProjectileData]()
