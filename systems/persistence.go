package systems

import (
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/retro-runner/components"
	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/save"
	"github.com/automoto/retro-runner/tags"
)

var (
	saver   = save.NewSaver(nil)
	journey = save.NewJourney()
)

// InitPersistence opens the gdata store. With -skip-save nothing is read or
// written and progress only lives in memory.
func InitPersistence() error {
	if cfg.Debug.SkipSave {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "retro-runner",
	})
	if err != nil {
		return err
	}
	saver = save.NewSaver(m)
	return nil
}

// LoadJourney reads saved progress into memory and returns it.
func LoadJourney() save.Progress {
	p, err := saver.LoadProgress()
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
	}
	journey = p
	return journey
}

// CurrentJourney is the in-memory progress, saved or not.
func CurrentJourney() save.Progress {
	return journey
}

// LoadSettings reads saved settings, falling back to defaults.
func LoadSettings() save.Settings {
	s, err := saver.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	return s
}

// SaveCurrentSettings stores the audio settings from the world's audio queue.
func SaveCurrentSettings(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	if err := saver.SaveSettings(save.Settings{SFXVolume: a.SFXVolume, Muted: a.Muted}); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// PersistProgress snapshots the player and level into the journey and saves it.
func PersistProgress(e *ecs.ECS) {
	snapshotJourney(e)
	commitJourney()
}

// MarkLevelComplete unlocks the next level and saves the journey pointing
// at it.
func MarkLevelComplete(e *ecs.ECS) {
	snapshotJourney(e)
	levelEntry, ok := components.Level.First(e.World)
	if ok {
		level := components.Level.Get(levelEntry)
		journey.MarkLevelComplete(level.LevelIndex, len(level.Levels))
		level.Unlocked = journey.UnlockedLevel
	}
	commitJourney()
}

// ResetJourney starts over: first level, first character, initial lives and
// no cherries.
func ResetJourney() save.Progress {
	p, err := saver.ResetJourney()
	if err != nil {
		log.Printf("Warning: Could not reset game progress: %v", err)
	}
	journey = p
	return journey
}

func snapshotJourney(e *ecs.ECS) {
	if playerEntry, ok := tags.Player.First(e.World); ok {
		journey.Lives = components.Lives.Get(playerEntry).Lives
		journey.Cherries = components.Collector.Get(playerEntry).Cherries
		journey.Character = components.Player.Get(playerEntry).ProfileIndex
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		journey.LevelIndex = level.LevelIndex
		if level.Unlocked > journey.UnlockedLevel {
			journey.UnlockedLevel = level.Unlocked
		}
	}
}

func commitJourney() {
	if err := saver.SaveProgress(journey); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
	}
}

// StartAt overrides where the loaded journey resumes. Negative values keep
// the saved level or character.
func StartAt(levelIndex, character int) {
	if levelIndex >= 0 {
		journey.LevelIndex = levelIndex
	}
	if character >= 0 {
		journey.Character = character
	}
}
