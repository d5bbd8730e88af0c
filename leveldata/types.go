// Package leveldata parses Tiled TMX levels into plain gameplay data.
// It has no dependencies on ebitengine, donburi, or resolv so it can be
// loaded and tested headless.
//
// Tiled stores pixels with Y pointing down; everything here is converted to
// world units with Y pointing up. One world unit is one map tile.
package leveldata

// Rect is an axis-aligned box given by its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Direction is the heading of a projectile launcher.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Vector returns the unit vector for d. Unknown directions fire left.
func (d Direction) Vector() (float64, float64) {
	switch d {
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	}
	return -1, 0
}

// Item is a collectible placed in the level.
type Item struct {
	Rect
	Kind string
}

// Launcher periodically fires enemy projectiles.
type Launcher struct {
	Point
	Direction Direction
	Speed     float64 // world units / s
	Interval  float64 // seconds between shots
	ResetTime float64 // seconds a projectile lives
}

// Level holds everything the game needs from one TMX file.
type Level struct {
	Name          string
	Width         float64 // world units
	Height        float64
	PixelsPerUnit float64

	Spawn      Point
	Ground     []Rect
	Traps      []Rect
	DeathZones []Rect
	Items      []Item
	Finish     []Rect
	Launchers  []Launcher
}
