package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/physics"
)

// CreateSpace creates the collision world for a level of the given size in
// world units.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{World: physics.NewWorld(width, height)})
	return space
}

func mustSpace(ecs *ecs.ECS) *physics.World {
	return components.Space.Get(components.Space.MustFirst(ecs.World)).World
}
