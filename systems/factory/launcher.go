package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/tags"
)

// CreateLauncher places an enemy launcher. Its first shot comes one
// interval after the level starts.
func CreateLauncher(ecs *ecs.ECS, l leveldata.Launcher) *donburi.Entry {
	e := archetypes.Launcher.Spawn(ecs)
	components.Launcher.SetValue(e, components.LauncherData{
		Launcher: l,
		Cooldown: l.Interval,
	})
	return e
}

// CreateProjectile fires a projectile from the launcher's origin in its
// direction.
func CreateProjectile(ecs *ecs.ECS, l leveldata.Launcher) *donburi.Entry {
	size := cfg.Projectile.Size
	p := archetypes.Projectile.Spawn(ecs)

	obj := mustSpace(ecs).AddSolid(l.X-size/2, l.Y-size/2, size, size, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	dx, dy := l.Direction.Vector()
	components.Projectile.SetValue(p, components.ProjectileData{
		DirX:      dx,
		DirY:      dy,
		Speed:     l.Speed,
		ResetTime: l.ResetTime,
	})
	return p
}
