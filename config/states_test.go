package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateID_String(t *testing.T) {
	tests := []struct {
		state StateID
		want  string
	}{
		{Idle, "idle"},
		{Running, "run"},
		{Jumping, "jump"},
		{Falling, "fall"},
		{DoubleJumping, "double_jump"},
		{WallSliding, "wall_slide"},
		{StateID(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestCharacterAnimations_CoverEveryState(t *testing.T) {
	for set, clips := range CharacterAnimations {
		for state := range StateToName {
			_, ok := clips[state]
			assert.True(t, ok, "%s has no %s clip", set, state)
		}
	}
}
