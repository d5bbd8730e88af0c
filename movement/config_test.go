package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative move speed", func(c *Config) { c.MoveSpeed = -1 }},
		{"max below base", func(c *Config) { c.MaxSpeed = c.MoveSpeed - 1 }},
		{"negative ramp", func(c *Config) { c.SpeedIncreasePerSecond = -0.1 }},
		{"negative air jumps", func(c *Config) { c.MaxAirJumps = -1 }},
		{"negative dash cooldown", func(c *Config) { c.DashCooldown = -1 }},
		{"wall grab without radius", func(c *Config) { c.CanWallGrab = true; c.GrabCheckRadius = 0 }},
		{"negative wall slide", func(c *Config) { c.WallSlideSpeed = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
