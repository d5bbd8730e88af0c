package config

// StateID identifies the player's discrete movement/animation state. The
// numeric values are the codes handed to the animation sink.
type StateID int

const (
	Idle StateID = iota
	Running
	Jumping
	Falling
	DoubleJumping
	WallSliding
)

// StateToName maps StateID to the name used in logs and the debug overlay.
// Animation clips are keyed by StateID in CharacterAnimations.
var StateToName = map[StateID]string{
	Idle:          "idle",
	Running:       "run",
	Jumping:       "jump",
	Falling:       "fall",
	DoubleJumping: "double_jump",
	WallSliding:   "wall_slide",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}
