package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/retro-runner/config"
)

// AudioData stores queued sound effects and the effects volume (singleton
// component). The audio system drains PendingSFX every tick.
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

// QueueSFX appends a sound to the world's audio queue. It returns false when
// the world has no audio singleton.
func QueueSFX(w donburi.World, id cfg.SoundID) bool {
	entry, ok := Audio.First(w)
	if !ok {
		return false
	}
	a := Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
	return true
}

var Audio = donburi.NewComponentType[AudioData]()
