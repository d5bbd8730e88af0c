package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FinishLineData is the level's goal flag. It fires once.
type FinishLineData struct {
	Activated bool
	Timer     float64 // seconds left until the level is completed
	Scale     float64 // flag pulse, 1 at rest
	pulse     *gween.Tween
}

// Activate arms the completion countdown. It reports false if the flag had
// already been reached.
func (f *FinishLineData) Activate(delay float64) bool {
	if f.Activated {
		return false
	}
	f.Activated = true
	f.Timer = delay
	f.pulse = gween.New(1.6, 1, float32(delay), ease.OutElastic)
	return true
}

// Advance counts down and reports true on the tick the countdown runs out.
func (f *FinishLineData) Advance(dt float64) bool {
	if !f.Activated || f.Timer <= 0 {
		return false
	}
	if f.pulse != nil {
		scale, _ := f.pulse.Update(float32(dt))
		f.Scale = float64(scale)
	}
	f.Timer -= dt
	return f.Timer <= 0
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
