package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	"github.com/automoto/retro-runner/leveldata"
)

// CreateLevelAtIndex creates the level entity. Out of range indexes fall back
// to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})
	return level
}

// PopulateLevel adds the level's geometry, hazards, pickups, goal and
// launchers to the world. The space must already exist.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) {
	for _, r := range level.Ground {
		CreateGround(ecs, r)
	}
	for _, r := range level.Traps {
		CreateTrap(ecs, r)
	}
	for _, r := range level.DeathZones {
		CreateDeathZone(ecs, r)
	}
	for _, item := range level.Items {
		CreateItem(ecs, item)
	}
	for _, r := range level.Finish {
		CreateFinishLine(ecs, r)
	}
	for _, l := range level.Launchers {
		CreateLauncher(ecs, l)
	}
}
