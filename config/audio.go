package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Character sounds
	SoundJump
	SoundDeath
	// World sounds
	SoundItemCollect
	SoundLevelFinish
	SoundProjectileHit
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:          "audio/sfx/jump.wav",
			SoundDeath:         "audio/sfx/death.wav",
			SoundItemCollect:   "audio/sfx/collect.wav",
			SoundLevelFinish:   "audio/sfx/finish.wav",
			SoundProjectileHit: "audio/sfx/explode.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDeath: 1.5,
		},
	}
}

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundItemCollect:
		return "item_collect"
	case SoundLevelFinish:
		return "level_finish"
	case SoundProjectileHit:
		return "projectile_hit"
	}
	return "none"
}
