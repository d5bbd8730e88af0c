package config

import "image/color"

// EffectID identifies a cosmetic particle effect
type EffectID int

const (
	EffectNone EffectID = iota
	EffectDust
	EffectJump
	EffectDash
	EffectExplosion
	EffectConfetti
)

// EffectTypeConfig describes how a particle puff looks and how long it lives
type EffectTypeConfig struct {
	Lifetime  int     // frames
	Size      float64 // world units
	Particles int
	Spread    float64 // world units
	Rise      float64 // world units per frame
	Color     color.RGBA
}

// EffectsConfig contains all particle effect definitions
type EffectsConfig struct {
	Types map[EffectID]EffectTypeConfig
	// Max live puffs per effect kind; dust is requested every running frame.
	MaxActive int

	// Squash & stretch applied to the character sprite
	JumpStretch     Vector
	LandSquash      Vector
	SquashLerpSpeed float64
}

var Effects EffectsConfig

func init() {
	Effects = EffectsConfig{
		MaxActive:       12,
		JumpStretch:     Vector{X: 0.8, Y: 1.2},
		LandSquash:      Vector{X: 1.25, Y: 0.75},
		SquashLerpSpeed: 0.25,
		Types: map[EffectID]EffectTypeConfig{
			EffectDust: {
				Lifetime: 12, Size: 0.08, Particles: 2, Spread: 0.2, Rise: 0.01,
				Color: color.RGBA{R: 200, G: 190, B: 170, A: 200},
			},
			EffectJump: {
				Lifetime: 18, Size: 0.1, Particles: 6, Spread: 0.4, Rise: 0.0,
				Color: color.RGBA{R: 230, G: 230, B: 230, A: 220},
			},
			EffectDash: {
				Lifetime: 15, Size: 0.12, Particles: 8, Spread: 0.6, Rise: 0.0,
				Color: LightBlue,
			},
			EffectExplosion: {
				Lifetime: 20, Size: 0.15, Particles: 10, Spread: 0.5, Rise: 0.02,
				Color: Orange,
			},
			EffectConfetti: {
				Lifetime: 90, Size: 0.1, Particles: 24, Spread: 1.5, Rise: 0.03,
				Color: BrightYellow,
			},
		},
	}
}

func (e EffectID) String() string {
	switch e {
	case EffectDust:
		return "dust"
	case EffectJump:
		return "jump"
	case EffectDash:
		return "dash"
	case EffectExplosion:
		return "explosion"
	case EffectConfetti:
		return "confetti"
	}
	return "none"
}
