package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/retro-runner/config"
)

func TestAnimation_Update(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	frames := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{0, 1, 1, 2, 2, 0}, frames)
	assert.True(t, a.Looped)

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimation_ZeroSpeedHolds(t *testing.T) {
	a := NewAnimation(3, 7, 1, 0)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 3, a.Frame())
	assert.Zero(t, a.Progress())
}

func TestAnimation_Progress(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0.5)
	a.Update()
	assert.InDelta(t, 0.25, a.Progress(), 1e-9)
	a.Update()
	assert.InDelta(t, 0.5, a.Progress(), 1e-9)
}

func TestSet_Play(t *testing.T) {
	set, ok := NewSet("ninja_frog")
	require.True(t, ok)
	require.NotNil(t, set.Current())
	assert.Equal(t, cfg.Idle, set.State())

	set.Play(cfg.Running)
	run := set.Current()
	for i := 0; i < 5; i++ {
		set.Update()
	}
	frame := run.Frame()
	assert.NotZero(t, frame)

	set.Play(cfg.Running)
	assert.Equal(t, frame, run.Frame(), "replaying the same state keeps the clip running")

	set.Play(cfg.Idle)
	set.Play(cfg.Running)
	assert.Zero(t, run.Frame(), "switching back restarts the clip")
}

func TestSet_UnknownKey(t *testing.T) {
	set, ok := NewSet("nobody")
	assert.False(t, ok)
	assert.Nil(t, set.Current())
	set.Update()
	set.Play(cfg.Falling)
	assert.Equal(t, cfg.Falling, set.State())
}
