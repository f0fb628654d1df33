package systems

import (
	"image/color"

	"github.com/decker502/sparks/pkg/components"
)

var testRed = color.NRGBA{R: 255, A: 255}

// fakeSampler returns predictable values and records how it was called.
// The angle advances by angleStep on every call so consecutive launches
// produce different velocities.
type fakeSampler struct {
	angle     float64
	angleStep float64
	speed     float64

	// lifetime picks the sampled lifetime; nil means "always max"
	lifetime func(min, max float64) float64

	lifetimeCalls [][2]float64
}

func (f *fakeSampler) SampleAngle(directional bool, base, deviation float64) float64 {
	a := f.angle
	f.angle += f.angleStep
	if directional {
		return base + a
	}
	return a
}

func (f *fakeSampler) SampleSpeed(maxSpeed float64) float64 {
	if f.speed > 0 {
		return f.speed
	}
	return maxSpeed
}

func (f *fakeSampler) SampleLifetime(min, max float64) float64 {
	f.lifetimeCalls = append(f.lifetimeCalls, [2]float64{min, max})
	if f.lifetime != nil {
		return f.lifetime(min, max)
	}
	return max
}

// explosionParams returns a permanent omnidirectional explosion at (x, y).
func explosionParams(capacity int, x, y float64) components.EmitterParams {
	return components.EmitterParams{
		Capacity:    capacity,
		Position:    components.Vec2{X: x, Y: y},
		Color:       testRed,
		Speed:       50,
		MinLifetime: 0.5,
		MaxLifetime: 2.0,
		Explosion:   true,
		Permanent:   true,
	}
}

// streamParams returns a permanent stream emitter at (x, y).
func streamParams(capacity int, x, y float64) components.EmitterParams {
	p := explosionParams(capacity, x, y)
	p.Explosion = false
	return p
}

func snapshot(ps *ParticleSystem) []components.Vertex {
	return ps.CollectVertices()
}
