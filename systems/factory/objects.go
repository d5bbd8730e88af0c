package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/leveldata"
	"github.com/automoto/retro-runner/tags"
)

// CreateGround adds a solid box the player stands on and slides down.
func CreateGround(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	return createStatic(ecs, archetypes.Ground, r, tags.ResolvSolid)
}

// CreateTrap adds spikes or saws that kill on contact.
func CreateTrap(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	return createStatic(ecs, archetypes.Trap, r, tags.ResolvTrap)
}

// CreateDeathZone adds an invisible zone that kills on contact, usually
// below the level.
func CreateDeathZone(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	return createStatic(ecs, archetypes.DeathZone, r, tags.ResolvDeadZone)
}

func CreateItem(ecs *ecs.ECS, item leveldata.Item) *donburi.Entry {
	e := createStatic(ecs, archetypes.Item, item.Rect, tags.ResolvItem)
	components.Item.SetValue(e, components.ItemData{Kind: item.Kind})
	return e
}

// CreateFinishLine creates a finish line entity with collision detection
func CreateFinishLine(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	e := createStatic(ecs, archetypes.FinishLine, r, tags.ResolvFinishLine)
	components.FinishLine.SetValue(e, components.FinishLineData{Scale: 1})
	return e
}

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func createStatic(ecs *ecs.ECS, a spawner, r leveldata.Rect, tag string) *donburi.Entry {
	e := a.Spawn(ecs)
	obj := mustSpace(ecs).AddSolid(r.X, r.Y, r.W, r.H, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}
