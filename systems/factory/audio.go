package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/archetypes"
	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
)

// CreateAudio creates the world's sound queue.
func CreateAudio(ecs *ecs.ECS, volume float64, muted bool) *donburi.Entry {
	e := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(e, components.AudioData{
		SFXVolume:  volume,
		Muted:      muted,
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return e
}
