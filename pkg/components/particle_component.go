package components

import "image/color"

// Vec2 is a 2D vector in world coordinates (pixels, y pointing down).
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Transparent is the colour of a render point that must not be visible.
var Transparent = color.NRGBA{}

// Vertex is a single render point handed to the renderer.
//
// Color is non-premultiplied so the particle system can fade a point by
// rewriting only the alpha channel.
type Vertex struct {
	Position Vec2
	Color    color.NRGBA
}

// Particle holds the simulation state of one particle slot.
// A particle has no identity beyond its index inside Emitter.Particles; the
// vertex with the same index in Emitter.Vertices is its render point.
//
// This is a pure data component - it contains no behaviour.
type Particle struct {
	// Velocity (像素/秒), constant until the particle respawns
	Velocity Vec2

	// Lifetime is the number of seconds left before the particle respawns or dies.
	Lifetime float64

	// OriginalLifetime is the lifetime sampled at spawn, used as the fade denominator.
	OriginalLifetime float64
}
