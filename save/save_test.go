package save

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/retro-runner/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func TestSaver_Defaults(t *testing.T) {
	s := NewSaver(newMemStore())

	settings, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	progress, err := s.LoadProgress()
	require.NoError(t, err)
	assert.Equal(t, cfg.Lives.InitialLives, progress.Lives)
	assert.Zero(t, progress.Cherries)
}

func TestSaver_RoundTrip(t *testing.T) {
	store := newMemStore()
	s := NewSaver(store)

	want := Progress{Lives: 2, Cherries: 14, Character: 3, LevelIndex: 1, UnlockedLevel: 2}
	require.NoError(t, s.SaveProgress(want))
	require.NoError(t, s.SaveSettings(Settings{SFXVolume: 0.5, Muted: true}))

	got, err := s.LoadProgress()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	settings, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, Settings{SFXVolume: 0.5, Muted: true}, settings)
	assert.JSONEq(t, `{"sfxVolume":0.5,"muted":true}`, string(store.items["settings"]))
}

func TestSaver_BadData(t *testing.T) {
	store := newMemStore()
	store.items["progress"] = []byte("{not json")
	store.items["settings"] = []byte(`{"sfxVolume":7}`)
	s := NewSaver(store)

	progress, err := s.LoadProgress()
	assert.Error(t, err)
	assert.Equal(t, NewJourney(), progress)

	settings, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, cfg.Audio.DefaultSFXVol, settings.SFXVolume)

	store.items["progress"] = []byte(`{"lives":-1}`)
	progress, err = s.LoadProgress()
	assert.Error(t, err)
	assert.Equal(t, NewJourney(), progress)
}

func TestSaver_StoreError(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk on fire")
	s := NewSaver(store)

	_, err := s.LoadProgress()
	assert.ErrorContains(t, err, "disk on fire")
}

func TestSaver_Disabled(t *testing.T) {
	s := NewSaver(nil)
	assert.False(t, s.Enabled())
	require.NoError(t, s.SaveProgress(Progress{Lives: 9}))

	progress, err := s.LoadProgress()
	require.NoError(t, err)
	assert.Equal(t, NewJourney(), progress)

	var nilSaver *Saver
	assert.False(t, nilSaver.Enabled())
}

func TestSaver_ResetJourney(t *testing.T) {
	store := newMemStore()
	s := NewSaver(store)
	require.NoError(t, s.SaveProgress(Progress{Lives: 0, Cherries: 40, Character: 2, LevelIndex: 2, UnlockedLevel: 2}))

	p, err := s.ResetJourney()
	require.NoError(t, err)
	assert.Equal(t, NewJourney(), p)

	loaded, err := s.LoadProgress()
	require.NoError(t, err)
	assert.Equal(t, NewJourney(), loaded)
}

func TestProgress_MarkLevelComplete(t *testing.T) {
	p := NewJourney()
	p.MarkLevelComplete(0, 3)
	assert.Equal(t, 1, p.LevelIndex)
	assert.Equal(t, 1, p.UnlockedLevel)

	p.MarkLevelComplete(2, 3)
	assert.Equal(t, 0, p.LevelIndex, "finishing the last level wraps to the first")
	assert.Equal(t, 3, p.UnlockedLevel)

	p.MarkLevelComplete(0, 3)
	assert.Equal(t, 3, p.UnlockedLevel, "unlocks never go backwards")
}
