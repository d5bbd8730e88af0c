package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/retro-runner/movement"
)

// Query answers the movement controller's ground and wall probes: resolv
// finds the candidates in the shared cells, then the exact shape test runs.
type Query struct {
	world *World
}

// BoxCast sweeps a box from center along dir for distance units.
func (q *Query) BoxCast(center, size, dir movement.Vec2, distance float64, layer string) bool {
	s := q.world.scale
	end := movement.Vec2{X: center.X + dir.X*distance, Y: center.Y + dir.Y*distance}

	minX := (math.Min(center.X, end.X) - size.X/2) * s
	minY := (math.Min(center.Y, end.Y) - size.Y/2) * s
	maxX := (math.Max(center.X, end.X) + size.X/2) * s
	maxY := (math.Max(center.Y, end.Y) + size.Y/2) * s

	for _, o := range q.world.broadphase(minX, minY, maxX-minX, maxY-minY, layer) {
		if boxesOverlap(minX, minY, maxX-minX, maxY-minY, o) {
			return true
		}
	}
	return false
}

// OverlapCircle reports whether a circle touches anything on layer.
func (q *Query) OverlapCircle(center movement.Vec2, radius float64, layer string) bool {
	s := q.world.scale
	c := movement.Vec2{X: center.X * s, Y: center.Y * s}
	r := radius * s

	for _, o := range q.world.broadphase(c.X-r, c.Y-r, r*2, r*2, layer) {
		if circleOverlapsBox(c, r, o) {
			return true
		}
	}
	return false
}

func circleOverlapsBox(c movement.Vec2, r float64, o *resolv.Object) bool {
	nx := math.Max(o.X, math.Min(c.X, o.X+o.W))
	ny := math.Max(o.Y, math.Min(c.Y, o.Y+o.H))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy < r*r
}
