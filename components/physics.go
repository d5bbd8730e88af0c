package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/physics"
)

// SpaceData wraps the level's collision world. There is one per ECS world.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

// ObjectData is a static solid or trigger box in the collision world.
// Object.Data points back at the owning entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// BodyData is a dynamic body stepped once per fixed tick.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
