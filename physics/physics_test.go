package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/retro-runner/movement"
)

const dt = 0.02

var playerSize = movement.Vec2{X: 0.8, Y: 1}

func newTestWorld() *World {
	w := NewWorld(20, 20)
	w.AddSolid(0, 0, 10, 1, "solid")
	return w
}

func stepN(b *Body, n int) {
	for i := 0; i < n; i++ {
		b.Step(dt)
	}
}

func TestBody_LandsOnFloor(t *testing.T) {
	w := newTestWorld()
	b := w.NewBody(movement.Vec2{X: 5, Y: 3}, playerSize, "solid", "player")

	stepN(b, 100)

	assert.InDelta(t, 1.5, b.Position().Y, 1e-6)
	assert.Zero(t, b.Velocity().Y)
	assert.Equal(t, playerSize, b.Size())
}

func TestBody_FallSpeedIsCapped(t *testing.T) {
	w := NewWorld(20, 200)
	b := w.NewBody(movement.Vec2{X: 5, Y: 190}, playerSize, "solid")

	stepN(b, 200)

	assert.InDelta(t, -25.0, b.Velocity().Y, 1e-9)
}

func TestBody_StopsAtWall(t *testing.T) {
	w := newTestWorld()
	w.AddSolid(7, 1, 1, 5, "solid")
	b := w.NewBody(movement.Vec2{X: 5, Y: 1.5}, playerSize, "solid")

	for i := 0; i < 50; i++ {
		b.SetVelocity(movement.Vec2{X: 10, Y: b.Velocity().Y})
		b.Step(dt)
	}

	assert.InDelta(t, 6.6, b.Position().X, 1e-6)
	assert.InDelta(t, 1.5, b.Position().Y, 1e-6)
}

func TestBody_HeadHitsCeiling(t *testing.T) {
	w := newTestWorld()
	w.AddSolid(3, 3, 4, 1, "solid")
	b := w.NewBody(movement.Vec2{X: 5, Y: 1.5}, playerSize, "solid")

	b.SetVelocity(movement.Vec2{Y: 14})
	stepN(b, 5)

	assert.LessOrEqual(t, b.Position().Y, 2.5+1e-6)
}

func TestBody_NonSolidFallsThrough(t *testing.T) {
	w := newTestWorld()
	w.AddSolid(4.5, 1, 1, 1, "trap")
	b := w.NewBody(movement.Vec2{X: 5, Y: 1.5}, playerSize, "solid", "player")

	require.Len(t, b.Touching("trap"), 1)

	b.SetSolid(false)
	assert.False(t, b.Solid())
	assert.Nil(t, b.Touching("trap"))

	stepN(b, 20)
	assert.Less(t, b.Position().Y, 1.0)

	b.SetSolid(true)
	b.SetPosition(movement.Vec2{X: 5, Y: 1.5})
	assert.Len(t, b.Touching("trap"), 1)
}

func TestQuery_BoxCast(t *testing.T) {
	w := newTestWorld()
	q := w.Query()

	tests := []struct {
		name   string
		center movement.Vec2
		layer  string
		want   bool
	}{
		{"resting on the floor", movement.Vec2{X: 5, Y: 1.5}, "solid", true},
		{"hovering above the floor", movement.Vec2{X: 5, Y: 2}, "solid", false},
		{"past the floor edge", movement.Vec2{X: 15, Y: 1.5}, "solid", false},
		{"other layer", movement.Vec2{X: 5, Y: 1.5}, "trap", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.BoxCast(tt.center, playerSize, movement.Down, 0.1, tt.layer))
		})
	}
}

func TestQuery_OverlapCircle(t *testing.T) {
	w := newTestWorld()
	w.AddSolid(7, 1, 1, 5, "solid")
	q := w.Query()

	assert.True(t, q.OverlapCircle(movement.Vec2{X: 6.9, Y: 3}, 0.2, "solid"))
	assert.False(t, q.OverlapCircle(movement.Vec2{X: 6.5, Y: 3}, 0.2, "solid"))
}

func TestQuery_DrivesController(t *testing.T) {
	w := newTestWorld()
	b := w.NewBody(movement.Vec2{X: 5, Y: 1.5}, playerSize, "solid")
	c := movement.New(movement.Deps{Query: w.Query(), Body: b, GroundLayer: "solid"})
	require.NoError(t, c.Init(movement.DefaultConfig()))

	c.Tick(dt)
	b.Step(dt)
	assert.True(t, c.Contacts().Grounded)

	c.RequestJump()
	assert.Equal(t, 14.0, b.Velocity().Y)
	b.Step(dt)
	assert.Greater(t, b.Position().Y, 1.5)
}
