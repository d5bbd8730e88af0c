package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/tags"
)

// DefaultLayer is the single render layer the game draws on.
const DefaultLayer ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Animation,
		components.State,
		components.Lives,
		components.Collector,
		components.SquashStretch,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Object,
	)
	DeathZone = newArchetype(
		tags.DeathZone,
		components.Object,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	Launcher = newArchetype(
		tags.Launcher,
		components.Launcher,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Particles,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
