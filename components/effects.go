package components

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/retro-runner/config"
)

// ScreenShakeData tracks an active camera shake. The amplitude decays from
// Intensity to zero over the tween's duration.
type ScreenShakeData struct {
	Intensity float64 // starting amplitude in world units
	Current   float64
	Offset    dmath.Vec2
	Elapsed   int // ticks, drives the oscillation
	decay     *gween.Tween
}

func NewScreenShake(intensity, duration float64) ScreenShakeData {
	return ScreenShakeData{
		Intensity: intensity,
		Current:   intensity,
		decay:     gween.New(float32(intensity), 0, float32(duration), ease.Linear),
	}
}

// Advance moves the shake forward by dt seconds and reports whether it has
// finished. The offset is zero once finished.
func (s *ScreenShakeData) Advance(dt float64) bool {
	if s.decay == nil {
		s.Current, s.Offset = 0, dmath.Vec2{}
		return true
	}
	current, finished := s.decay.Update(float32(dt))
	s.Elapsed++
	s.Current = float64(current)
	if finished {
		s.Current, s.Offset = 0, dmath.Vec2{}
		return true
	}
	s.Offset = dmath.Vec2{
		X: math.Sin(float64(s.Elapsed)*1.1) * s.Current,
		Y: math.Cos(float64(s.Elapsed)*1.3) * s.Current,
	}
	return false
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY float64
	LerpSpeed      float64 // fraction of the remaining distance to 1.0 closed per tick
}

// Settle eases the scale back toward 1 and reports whether it got there.
func (s *SquashStretchData) Settle() bool {
	s.ScaleX += (1 - s.ScaleX) * s.LerpSpeed
	s.ScaleY += (1 - s.ScaleY) * s.LerpSpeed
	if math.Abs(s.ScaleX-1) < 0.01 && math.Abs(s.ScaleY-1) < 0.01 {
		s.ScaleX, s.ScaleY = 1, 1
		return true
	}
	return false
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// AutoDestroyData removes an entity after a number of ticks
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// Particle is one dot of a puff, in world units.
type Particle struct {
	X, Y   float64
	VX, VY float64 // per tick
}

// ParticlesData is a short-lived puff of dots spawned by an effect.
type ParticlesData struct {
	Kind      config.EffectID
	Particles []Particle
	Size      float64
	Color     color.RGBA
	Age       int
	Lifetime  int
}

// Advance moves every particle by one tick.
func (p *ParticlesData) Advance() {
	p.Age++
	for i := range p.Particles {
		p.Particles[i].X += p.Particles[i].VX
		p.Particles[i].Y += p.Particles[i].VY
	}
}

// Alpha fades the puff out over its lifetime.
func (p *ParticlesData) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, 1-float64(p.Age)/float64(p.Lifetime))
}

var Particles = donburi.NewComponentType[ParticlesData]()
