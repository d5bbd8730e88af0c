package factory

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
	"github.com/automoto/retro-runner/tags"
)

// SpawnEffect creates a particle puff centered at at (world units). It
// returns nil for unknown kinds and when MaxActive puffs of the kind are
// already alive.
func SpawnEffect(ecs *ecs.ECS, kind cfg.EffectID, at movement.Vec2) *donburi.Entry {
	def, ok := cfg.Effects.Types[kind]
	if !ok {
		return nil
	}
	if countEffects(ecs, kind) >= cfg.Effects.MaxActive {
		return nil
	}

	particles := make([]components.Particle, def.Particles)
	for i := range particles {
		angle := rand.Float64() * 2 * math.Pi
		dist := rand.Float64() * def.Spread
		speed := dist / float64(def.Lifetime)
		particles[i] = components.Particle{
			X:  at.X,
			Y:  at.Y,
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle)*speed + def.Rise,
		}
	}

	e := archetypes.Effect.Spawn(ecs)
	components.Particles.SetValue(e, components.ParticlesData{
		Kind:      kind,
		Particles: particles,
		Size:      def.Size,
		Color:     def.Color,
		Lifetime:  def.Lifetime,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{FramesRemaining: def.Lifetime})
	return e
}

func countEffects(ecs *ecs.ECS, kind cfg.EffectID) int {
	n := 0
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if components.Particles.Get(e).Kind == kind {
			n++
		}
	})
	return n
}
