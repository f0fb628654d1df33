package components

import "image/color"

// EmitterParams describes a new emitter. It is the argument of
// ParticleSystem.Add and is usually built from a preset by the effect factory.
type EmitterParams struct {
	Capacity int         // Number of particle slots, fixed for the emitter's life
	Position Vec2        // Emitter origin (world coordinates)
	Color    color.NRGBA // Colour of live particles

	Speed       float64 // Upper bound of the launch speed (pixels/second)
	MinLifetime float64 // Respawn lifetime range (seconds)
	MaxLifetime float64

	// Explosion emitters launch every particle at once with its colour already set.
	// Stream emitters start transparent and light up particles as they respawn.
	Explosion bool

	// Permanent emitters never expire on their own. Others stop respawning
	// once Lifetime seconds have elapsed.
	Permanent bool
	Lifetime  float64

	// Directional emitters launch within Angle ± Deviation degrees,
	// the others launch in every direction.
	Directional bool
	Angle       float64
	Deviation   float64
}

// Emitter is a fixed-size particle pool.
//
// Particles and Vertices form a structure-of-arrays: both slices always hold
// exactly Capacity entries and share indices. They are allocated once in
// ParticleSystem.Add and never resized.
//
// This is a pure data component - it contains no behaviour.
type Emitter struct {
	ID       uint16
	Position Vec2
	Capacity int

	Particles []Particle
	Vertices  []Vertex

	Color       color.NRGBA
	Speed       float64
	MinLifetime float64
	MaxLifetime float64

	Explosion bool
	Permanent bool

	// Remaining lifetime of a non-permanent emitter (seconds)
	Remaining float64

	Directional bool
	Angle       float64
	Deviation   float64

	// Alive is cleared when the emitter's lifetime runs out or it is removed.
	// Particles of a dead emitter are not respawned; the emitter is dropped
	// once all of them have expired.
	Alive bool
}
