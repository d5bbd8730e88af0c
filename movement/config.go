package movement

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/retro-runner/config"
)

// ErrInvalidConfig is returned when a profile cannot be applied.
var ErrInvalidConfig = errors.New("invalid movement config")

// Config is an immutable per-character movement profile. A Controller copies
// it whole on ApplyProfile; it is never edited in place.
type Config struct {
	MoveSpeed              float64
	MaxSpeed               float64
	SpeedIncreasePerSecond float64

	JumpForce      float64
	ExtraJumpForce float64
	MaxAirJumps    int

	DashSpeed    float64
	DashDuration float64
	DashCooldown float64

	CanWallGrab     bool
	GrabCheckRadius float64
	GrabRightOffset Vec2
	GrabLeftOffset  Vec2
	WallSlideSpeed  float64
	WallJumpForce   Vec2

	Sprite     string
	Animations string
}

// DefaultConfig returns the profile described by config.Player.
func DefaultConfig() Config {
	p := cfg.Player
	return Config{
		MoveSpeed:              p.MoveSpeed,
		MaxSpeed:               p.MaxSpeed,
		SpeedIncreasePerSecond: p.SpeedIncreasePerSecond,
		JumpForce:              p.JumpForce,
		ExtraJumpForce:         p.ExtraJumpForce,
		MaxAirJumps:            p.MaxAirJumps,
		DashSpeed:              p.DashSpeed,
		DashDuration:           p.DashDuration,
		DashCooldown:           p.DashCooldown,
		CanWallGrab:            p.CanWallGrab,
		GrabCheckRadius:        p.GrabCheckRadius,
		GrabRightOffset:        Vec2{X: p.GrabRightOffset.X, Y: p.GrabRightOffset.Y},
		GrabLeftOffset:         Vec2{X: p.GrabLeftOffset.X, Y: p.GrabLeftOffset.Y},
		WallSlideSpeed:         p.WallSlideSpeed,
		WallJumpForce:          Vec2{X: p.WallJumpForce.X, Y: p.WallJumpForce.Y},
		Sprite:                 p.Sprite,
		Animations:             p.Animations,
	}
}

// Validate checks the ranges the controller relies on.
func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, c.MoveSpeed)
	case c.MaxSpeed < c.MoveSpeed:
		return fmt.Errorf("%w: max speed %v below move speed %v", ErrInvalidConfig, c.MaxSpeed, c.MoveSpeed)
	case c.SpeedIncreasePerSecond < 0:
		return fmt.Errorf("%w: speed ramp %v is negative", ErrInvalidConfig, c.SpeedIncreasePerSecond)
	case c.MaxAirJumps < 0:
		return fmt.Errorf("%w: max air jumps %d is negative", ErrInvalidConfig, c.MaxAirJumps)
	case c.DashSpeed < 0, c.DashDuration < 0, c.DashCooldown < 0:
		return fmt.Errorf("%w: dash values must not be negative", ErrInvalidConfig)
	case c.CanWallGrab && c.GrabCheckRadius <= 0:
		return fmt.Errorf("%w: wall grab needs a positive probe radius", ErrInvalidConfig)
	case c.WallSlideSpeed < 0:
		return fmt.Errorf("%w: wall slide speed %v is negative", ErrInvalidConfig, c.WallSlideSpeed)
	}
	return nil
}
