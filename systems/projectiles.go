package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/systems/factory"
	"github.com/automoto/retro-runner/tags"
)

// UpdateLaunchers fires a projectile from each launcher every interval.
func UpdateLaunchers(ecs *ecs.ECS) {
	dt := cfg.FixedDelta()
	components.Launcher.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Launcher.Get(e)
		l.Cooldown -= dt
		if l.Cooldown > 0 {
			return
		}
		l.Cooldown += l.Interval
		factory.CreateProjectile(ecs, l.Launcher)
	})
}

// UpdateProjectiles moves projectiles, expires old ones and explodes the
// ones that hit ground or the player. A player hit is a death.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := cfg.FixedDelta()
	space := components.Space.Get(components.Space.MustFirst(ecs.World))

	var spent []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e).Object

		dx, dy, expired := p.Advance(dt)
		if expired {
			spent = append(spent, e)
			return
		}
		c := space.Center(obj)
		c.X += dx
		c.Y += dy
		space.MoveTo(obj, c)

		hits := space.Overlapping(obj, tags.ResolvSolid, tags.ResolvPlayer)
		if len(hits) == 0 {
			return
		}

		factory.SpawnEffect(ecs, cfg.EffectExplosion, c)
		PlaySFX(ecs, cfg.SoundProjectileHit)
		if player := hitPlayer(hits); player != nil {
			KillPlayer(ecs, player)
		}
		spent = append(spent, e)
	})

	for _, e := range spent {
		space.Remove(components.Object.Get(e).Object)
		e.Remove()
	}
}

func hitPlayer(hits []*resolv.Object) *donburi.Entry {
	for _, obj := range hits {
		if !obj.HasTags(tags.ResolvPlayer) {
			continue
		}
		if e, ok := obj.Data.(*donburi.Entry); ok && e.HasComponent(tags.Player) {
			return e
		}
	}
	return nil
}
