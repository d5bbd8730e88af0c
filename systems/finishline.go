package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/systems/factory"
	"github.com/automoto/retro-runner/tags"
)

// UpdateFinishLine fires the goal once when the player reaches it and
// completes the level after the celebration delay.
func UpdateFinishLine(ecs *ecs.ECS) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok && !playerEntry.HasComponent(components.Death) {
		for _, obj := range components.Body.Get(playerEntry).Touching(tags.ResolvFinishLine) {
			finishEntry, ok := obj.Data.(*donburi.Entry)
			if !ok || finishEntry == nil {
				continue
			}
			if components.FinishLine.Get(finishEntry).Activate(cfg.Finish.CompleteDelay) {
				PlaySFX(ecs, cfg.SoundLevelFinish)
				x, y, w, h := components.Space.Get(components.Space.MustFirst(ecs.World)).Bounds(obj)
				factory.SpawnEffect(ecs, cfg.EffectConfetti, movement.Vec2{X: x + w/2, Y: y + h})
			}
		}
	}

	tags.FinishLine.Each(ecs.World, func(e *donburi.Entry) {
		if !components.FinishLine.Get(e).Advance(cfg.FixedDelta()) {
			return
		}
		MarkLevelComplete(ecs)
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			components.Level.Get(levelEntry).Request(components.OutcomeNextLevel)
		}
	})
}

// IsLevelComplete reports whether a finish line has been reached.
func IsLevelComplete(ecs *ecs.ECS) bool {
	complete := false
	tags.FinishLine.Each(ecs.World, func(e *donburi.Entry) {
		if components.FinishLine.Get(e).Activated {
			complete = true
		}
	})
	return complete
}
