// Package physics hosts the game's collision world on top of a resolv space.
//
// The public API is in world units with Y pointing up and talks in box
// centers. Internally objects live in the resolv space in pixels (world units
// times config.C.PixelsPerUnit), which is the scale resolv's cell mapping is
// built for. A resolv object's X/Y is its bottom-left corner.
package physics

import (
	"math"

	"github.com/solarlune/resolv"

	cfg "github.com/automoto/retro-runner/config"
	"github.com/automoto/retro-runner/movement"
)

// contactEpsilon (pixels) treats touching edges as not overlapping.
const contactEpsilon = 1e-6

type World struct {
	space *resolv.Space
	scale float64
	query *Query
}

// NewWorld creates a world covering [0,width] x [0,height] world units.
func NewWorld(width, height float64) *World {
	scale := cfg.C.PixelsPerUnit
	if scale <= 0 {
		scale = 1
	}
	cell := int(math.Ceil(float64(cfg.Physics.CellSize) * scale))
	if cell <= 0 {
		cell = 16
	}
	w := int(math.Ceil(width*scale)) + cell
	h := int(math.Ceil(height*scale)) + cell

	world := &World{space: resolv.NewSpace(w, h, cell, cell), scale: scale}
	world.query = &Query{world: world}
	return world
}

func (w *World) Space() *resolv.Space {
	return w.space
}

// Query returns the movement.PhysicsQuery backed by this world.
func (w *World) Query() *Query {
	return w.query
}

// AddSolid registers a static box by its bottom-left corner.
func (w *World) AddSolid(x, y, width, height float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*w.scale, y*w.scale, width*w.scale, height*w.scale, tags...)
	w.space.Add(obj)
	return obj
}

func (w *World) Remove(objs ...*resolv.Object) {
	w.space.Remove(objs...)
}

// Bounds returns an object's box in world units (bottom-left corner, size).
func (w *World) Bounds(obj *resolv.Object) (x, y, width, height float64) {
	return obj.X / w.scale, obj.Y / w.scale, obj.W / w.scale, obj.H / w.scale
}

// Center returns an object's center in world units.
func (w *World) Center(obj *resolv.Object) movement.Vec2 {
	return movement.Vec2{X: (obj.X + obj.W/2) / w.scale, Y: (obj.Y + obj.H/2) / w.scale}
}

// MoveTo places an object's center at c (world units).
func (w *World) MoveTo(obj *resolv.Object, c movement.Vec2) {
	obj.X = c.X*w.scale - obj.W/2
	obj.Y = c.Y*w.scale - obj.H/2
	obj.Update()
}

// Overlapping returns the objects carrying any of tags whose boxes overlap
// obj, excluding obj itself. Edges that only touch do not count.
func (w *World) Overlapping(obj *resolv.Object, tags ...string) []*resolv.Object {
	if obj == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range w.broadphase(obj.X, obj.Y, obj.W, obj.H, tags...) {
		if other != obj && boxesOverlap(obj.X, obj.Y, obj.W, obj.H, other) {
			out = append(out, other)
		}
	}
	return out
}

// NewBody creates a dynamic body centered at center and adds it to the world.
// layer is the tag of the geometry the body collides with.
func (w *World) NewBody(center, size movement.Vec2, layer string, tags ...string) *Body {
	obj := resolv.NewObject(
		(center.X-size.X/2)*w.scale, (center.Y-size.Y/2)*w.scale,
		size.X*w.scale, size.Y*w.scale, tags...)
	w.space.Add(obj)
	return &Body{world: w, obj: obj, layer: layer, solid: true}
}

// broadphase collects the objects with any of tags that share a cell with
// the pixel box. resolv maps a box to cells with its far edge pulled in by
// one pixel, so the probe is grown by one pixel to cover it.
func (w *World) broadphase(x, y, width, height float64, tags ...string) []*resolv.Object {
	probe := resolv.NewObject(x, y, width+1, height+1)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags...)
}

func boxesOverlap(x, y, width, height float64, o *resolv.Object) bool {
	return x < o.X+o.W-contactEpsilon && x+width > o.X+contactEpsilon &&
		y < o.Y+o.H-contactEpsilon && y+height > o.Y+contactEpsilon
}
