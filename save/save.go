// Package save encodes the player's persisted progress and settings. It
// talks to any Store; the game hands it a gdata manager.
package save

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/retro-runner/config"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// Store is the item storage backing saves. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Settings represents the settings data stored on disk
type Settings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

func DefaultSettings() Settings {
	return Settings{SFXVolume: cfg.Audio.DefaultSFXVol}
}

// Progress is the journey state: what survives between levels and runs.
type Progress struct {
	Lives         int `json:"lives"`
	Cherries      int `json:"cherries"`
	Character     int `json:"character"`
	LevelIndex    int `json:"levelIndex"`
	UnlockedLevel int `json:"unlockedLevel"`
}

// NewJourney is the progress of a fresh start.
func NewJourney() Progress {
	return Progress{Lives: cfg.Lives.InitialLives}
}

// MarkLevelComplete unlocks the level after index and moves on to it.
func (p *Progress) MarkLevelComplete(index, levelCount int) {
	next := index + 1
	if next > p.UnlockedLevel {
		p.UnlockedLevel = next
	}
	if levelCount > 0 && next >= levelCount {
		next = 0
	}
	p.LevelIndex = next
}

// Saver reads and writes settings and progress. A Saver with a nil store
// does nothing and loads defaults.
type Saver struct {
	store Store
}

func NewSaver(store Store) *Saver {
	return &Saver{store: store}
}

func (s *Saver) Enabled() bool {
	return s != nil && s.store != nil
}

// LoadSettings returns defaults when nothing has been saved yet.
func (s *Saver) LoadSettings() (Settings, error) {
	settings := DefaultSettings()
	found, err := s.load(settingsKey, &settings)
	if err != nil || !found {
		return DefaultSettings(), err
	}
	if settings.SFXVolume < 0 || settings.SFXVolume > 1 {
		settings.SFXVolume = cfg.Audio.DefaultSFXVol
	}
	return settings, nil
}

func (s *Saver) SaveSettings(settings Settings) error {
	return s.save(settingsKey, settings)
}

// LoadProgress returns a new journey when nothing has been saved yet.
func (s *Saver) LoadProgress() (Progress, error) {
	progress := NewJourney()
	found, err := s.load(progressKey, &progress)
	if err != nil || !found {
		return NewJourney(), err
	}
	if progress.Lives < 0 || progress.Cherries < 0 || progress.LevelIndex < 0 {
		return NewJourney(), fmt.Errorf("saved progress out of range: %+v", progress)
	}
	return progress, nil
}

func (s *Saver) SaveProgress(p Progress) error {
	return s.save(progressKey, p)
}

// ResetJourney overwrites the saved progress with a fresh start and returns it.
func (s *Saver) ResetJourney() (Progress, error) {
	p := NewJourney()
	return p, s.SaveProgress(p)
}

func (s *Saver) load(key string, v any) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	data, err := s.store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Saver) save(key string, v any) error {
	if !s.Enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
