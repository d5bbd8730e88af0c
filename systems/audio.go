package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/assets"
	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
	missingSFX         = map[cfg.SoundID]bool{}
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, assets.FS)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play. Sounds that fail here are reported once and skipped afterwards.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			warnMissingSFX(id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(a *components.AudioData, soundID cfg.SoundID) {
	if a.Muted || a.SFXVolume <= 0 || missingSFX[soundID] {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	initGlobalAudio()
	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		warnMissingSFX(soundID, err)
		return
	}

	volume := a.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

func warnMissingSFX(id cfg.SoundID, err error) {
	if missingSFX[id] {
		return
	}
	missingSFX[id] = true
	log.Printf("[audio] warning: %s sound unavailable: %v", id, err)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	components.QueueSFX(e.World, sound)
}

// ToggleMute flips the mute flag and saves the setting
func ToggleMute(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.Muted = !a.Muted
	SaveCurrentSettings(e)
}
