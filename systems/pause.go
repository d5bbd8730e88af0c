package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
)

// UpdatePause toggles pause and handles the keys that work in any state:
// mute, the debug overlay and restarting the journey.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
	if input.JustPressed(cfg.ActionMute) {
		ToggleMute(ecs)
	}
	if input.JustPressed(cfg.ActionDebug) {
		cfg.Debug.DrawSensors = !cfg.Debug.DrawSensors
	}
	if input.JustPressed(cfg.ActionRestartJourney) {
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			components.Level.Get(levelEntry).Request(components.OutcomeResetJourney)
		}
	}
}

// GetOrCreatePause returns the singleton Pause component
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// WithPauseCheck wraps a system to skip execution while paused
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}
