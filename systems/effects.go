package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/config"
)

// UpdateEffects processes visual effect components (particles,
// squash/stretch, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	components.Particles.Each(ecs.World, func(e *donburi.Entry) {
		components.Particles.Get(e).Advance()
	})
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		components.SquashStretch.Get(e).Settle()
	})
	updateAutoDestroy(ecs)
}

func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerSquashStretch deforms an entity's sprite; it eases back to normal.
func TriggerSquashStretch(entry *donburi.Entry, scale config.Vector) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scale.X
	ss.ScaleY = scale.Y
	ss.LerpSpeed = config.Effects.SquashLerpSpeed
}
