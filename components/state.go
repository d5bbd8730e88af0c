package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/retro-runner/config"
)

// StateData mirrors the controller's classified state so other systems can
// react to transitions (landing squash, jump stretch).
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

// Enter records a new state and reports whether it changed.
func (s *StateData) Enter(state config.StateID) bool {
	if state == s.CurrentState {
		s.StateTimer++
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
	return true
}

// Landed reports whether the last transition went from airborne to grounded.
func (s *StateData) Landed() bool {
	if s.StateTimer != 0 {
		return false
	}
	airborne := s.PreviousState == config.Falling || s.PreviousState == config.Jumping ||
		s.PreviousState == config.DoubleJumping
	grounded := s.CurrentState == config.Idle || s.CurrentState == config.Running
	return airborne && grounded
}

var State = donburi.NewComponentType[StateData]()
