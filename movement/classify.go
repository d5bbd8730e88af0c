package movement

import cfg "github.com/automoto/retro-runner/config"

// Snapshot holds every input the state classifier reads.
type Snapshot struct {
	Grounded  bool
	OnWall    bool
	Intent    float64
	VelocityY float64
	AirJumps  int
	Locked    bool
}

// Classify derives the animation state from a snapshot. It is a pure
// function: there is no transition table and any state may follow any other.
//
// Running is decided before the vertical check, so a grounded player with
// input and a transient vertical velocity (landing, slopes) reads as
// Jumping/Falling for that frame.
func Classify(s Snapshot) cfg.StateID {
	if s.OnWall && !s.Grounded {
		return cfg.WallSliding
	}
	// The vertical check only runs while input is accepted.
	if s.Locked {
		return cfg.Idle
	}

	state := cfg.Idle
	if s.Intent != 0 {
		state = cfg.Running
	}

	threshold := cfg.Player.VerticalThreshold
	switch {
	case s.VelocityY > threshold:
		if s.AirJumps == 0 {
			state = cfg.Jumping
		} else {
			state = cfg.DoubleJumping
		}
	case s.VelocityY < -threshold:
		state = cfg.Falling
	}
	return state
}
