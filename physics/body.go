package physics

import (
	"math"

	"github.com/solarlune/resolv"

	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
)

// Body is a dynamic box moved by its velocity and gravity and stopped by the
// geometry on its collision layer. It implements movement.Body.
type Body struct {
	world *World
	obj   *resolv.Object
	layer string
	vel   movement.Vec2
	solid bool
}

func (b *Body) Position() movement.Vec2 {
	return b.world.Center(b.obj)
}

func (b *Body) Size() movement.Vec2 {
	return movement.Vec2{X: b.obj.W / b.world.scale, Y: b.obj.H / b.world.scale}
}

func (b *Body) Velocity() movement.Vec2 {
	return b.vel
}

func (b *Body) SetVelocity(v movement.Vec2) {
	b.vel = v
}

// SetPosition teleports the body's center.
func (b *Body) SetPosition(center movement.Vec2) {
	b.world.MoveTo(b.obj, center)
}

func (b *Body) Object() *resolv.Object {
	return b.obj
}

func (b *Body) Solid() bool {
	return b.solid
}

// SetSolid toggles the collider. A non-solid body leaves the space: it falls
// through geometry and triggers no longer see it.
func (b *Body) SetSolid(solid bool) {
	if solid == b.solid {
		return
	}
	b.solid = solid
	if solid {
		b.world.space.Add(b.obj)
	} else {
		b.world.space.Remove(b.obj)
	}
}

// Touching returns the objects with any of tags overlapping the body.
func (b *Body) Touching(tags ...string) []*resolv.Object {
	if !b.solid {
		return nil
	}
	return b.world.Overlapping(b.obj, tags...)
}

// Step integrates one fixed tick: gravity, then horizontal and vertical
// movement resolved separately against the collision layer.
func (b *Body) Step(dt float64) {
	b.vel.Y += cfg.Physics.Gravity * dt
	if b.vel.Y < -cfg.Physics.MaxFallSpeed {
		b.vel.Y = -cfg.Physics.MaxFallSpeed
	}

	dx := b.vel.X * dt * b.world.scale
	dy := b.vel.Y * dt * b.world.scale

	if !b.solid {
		b.obj.X += dx
		b.obj.Y += dy
		return
	}

	if dx != 0 {
		if allowed, hit := b.sweep(dx, 0); hit {
			dx = allowed
			b.vel.X = 0
		}
		b.obj.X += dx
	}

	if dy != 0 {
		if allowed, hit := b.sweep(0, dy); hit {
			dy = allowed
			b.vel.Y = 0
		}
		b.obj.Y += dy
	}

	b.obj.Update()
}

// sweep returns how far (pixels) the body may travel along a single axis
// before it touches a solid, and whether anything was in the way.
func (b *Body) sweep(dx, dy float64) (float64, bool) {
	o := b.obj
	move := dx + dy
	allowed, hit := move, false

	x, y, w, h := o.X+math.Min(dx, 0), o.Y+math.Min(dy, 0), o.W+math.Abs(dx), o.H+math.Abs(dy)
	for _, s := range b.world.broadphase(x, y, w, h, b.layer) {
		if s == o || !boxesOverlap(o.X+dx, o.Y+dy, o.W, o.H, s) {
			continue
		}

		var gap float64
		switch {
		case dx > 0:
			gap = s.X - (o.X + o.W)
		case dx < 0:
			gap = (s.X + s.W) - o.X
		case dy > 0:
			gap = s.Y - (o.Y + o.H)
		default:
			gap = (s.Y + s.H) - o.Y
		}

		// Already inside this solid; let the body move out of it.
		if move > 0 && gap < -contactEpsilon || move < 0 && gap > contactEpsilon {
			continue
		}
		if !hit || math.Abs(gap) < math.Abs(allowed) {
			allowed, hit = gap, true
		}
	}

	if hit && math.Abs(allowed) < contactEpsilon {
		allowed = 0
	}
	return allowed, hit
}
