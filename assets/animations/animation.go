// Package animations steps frame-based clips at the fixed tick rate.
package animations

import cfg "github.com/automoto/retro-runner/config"

// Animation walks frame indices First..Last, advancing by Step every
// SpeedInTps ticks. A zero speed holds the first frame.
type Animation struct {
	First      int
	Last       int
	Step       int
	SpeedInTps float32

	counter float32
	frame   int
	Looped  bool
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		counter:    speed,
		frame:      first,
	}
}

func FromDef(def cfg.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.Speed)
}

// Update advances the clip by one tick.
func (a *Animation) Update() {
	if a.SpeedInTps <= 0 || a.First == a.Last {
		return
	}
	a.counter--
	if a.counter >= 0 {
		return
	}
	a.counter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.frame = a.First
		a.Looped = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the position of the current frame within the clip, in [0, 1).
func (a *Animation) Progress() float64 {
	span := a.Last - a.First + 1
	if span <= 1 {
		return 0
	}
	return float64(a.frame-a.First) / float64(span)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.SpeedInTps
	a.Looped = false
}

// Set holds one clip per movement state for an animation set key.
type Set struct {
	Key     string
	clips   map[cfg.StateID]*Animation
	state   cfg.StateID
	current *Animation
}

// NewSet builds the clips for key from config.CharacterAnimations. An
// unknown key yields an empty set and ok=false; Current is then nil.
func NewSet(key string) (set *Set, ok bool) {
	defs, ok := cfg.CharacterAnimations[key]
	set = &Set{Key: key, clips: make(map[cfg.StateID]*Animation, len(defs))}
	for state, def := range defs {
		set.clips[state] = FromDef(def)
	}
	set.Play(cfg.Idle)
	return set, ok
}

// Play switches to the clip for state, restarting it only when the state
// changes.
func (s *Set) Play(state cfg.StateID) {
	if s.current != nil && s.state == state {
		return
	}
	s.state = state
	s.current = s.clips[state]
	if s.current != nil {
		s.current.Restart()
	}
}

func (s *Set) State() cfg.StateID {
	return s.state
}

func (s *Set) Current() *Animation {
	return s.current
}

func (s *Set) Update() {
	if s.current != nil {
		s.current.Update()
	}
}
