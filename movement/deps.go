// Package movement implements the player's movement and traversal controller:
// running with a ramping base speed, ground/air/wall jumps, a timed dash, wall
// sliding and the per-frame animation state derived from all of it.
//
// It has no dependency on ebiten, donburi or resolv. Physics, effects, sound
// and animation are reached through the small interfaces below so the
// controller can be driven headless by tests or by the game's systems.
package movement

import "github.com/automoto/retro-runner/config"

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Down is the direction used for ground probes.
var Down = Vec2{X: 0, Y: -1}

// PhysicsQuery answers overlap questions against a named collision layer.
type PhysicsQuery interface {
	// BoxCast reports whether a box centered at center with the given size,
	// swept distance units along dir, touches anything on layer.
	BoxCast(center, size, dir Vec2, distance float64, layer string) bool
	// OverlapCircle reports whether a circle touches anything on layer.
	OverlapCircle(center Vec2, radius float64, layer string) bool
}

// Body is the controlled physics body. Impulses are applied by setting
// velocity components directly.
type Body interface {
	Position() Vec2 // center of the collider
	Size() Vec2     // collider footprint
	Velocity() Vec2
	SetVelocity(v Vec2)
}

// EffectPlayer fires cosmetic particle effects. offset is relative to the
// body position.
type EffectPlayer interface {
	PlayEffect(kind config.EffectID, offset Vec2)
}

// SoundPlayer plays a sound effect by identifier.
type SoundPlayer interface {
	PlaySound(id config.SoundID)
}

// AnimationSink receives the derived state code once per frame and the
// sprite/animation set whenever a profile is applied.
type AnimationSink interface {
	SetState(code int)
	SetSkin(sprite, animations string)
}

// Deps are the collaborators handed to a Controller at construction. Any of
// them may be nil; the controller then degrades to a logged no-op for the
// affected behavior.
type Deps struct {
	Query       PhysicsQuery
	Body        Body
	Effects     EffectPlayer
	Sounds      SoundPlayer
	Animation   AnimationSink
	GroundLayer string
}
