package config

// ActionID represents a logical game action. Key and gamepad bindings live
// with the input system so this package stays free of ebiten.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionPause
	ActionMute
	ActionDebug
	ActionRestartJourney
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
