package particle

import (
	"math"
	"math/rand/v2"
	"time"
)

// FullCircle is the upper bound (exclusive) of omnidirectional launch angles, in degrees.
const FullCircle = 360.0

// MinSpeed is the lower bound of every sampled launch speed.
// Keeping it above zero avoids particles that never leave the emitter.
const MinSpeed = 1.0

// Sampler draws launch angles, speeds and lifetimes for particles.
//
// A Sampler wraps a single pseudorandom generator that is seeded once and
// never reseeded. It is not safe for concurrent use; each ParticleSystem
// owns its own Sampler.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler with a fixed seed. Two samplers created with
// the same seed produce the same sequence of values.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewTimeSeededSampler creates a Sampler seeded from the wall clock.
func NewTimeSeededSampler() *Sampler {
	return NewSampler(uint64(time.Now().UnixNano()))
}

// RandomInRange returns a random float64 in the range [min, max].
func (s *Sampler) RandomInRange(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// SampleAngle returns a launch angle in degrees.
// Directional emitters sample uniformly in [base-deviation, base+deviation],
// all others sample uniformly in [0, 360).
func (s *Sampler) SampleAngle(directional bool, base, deviation float64) float64 {
	if directional {
		return s.RandomInRange(base-deviation, base+deviation)
	}
	return s.rng.Float64() * FullCircle
}

// SampleSpeed returns a launch speed uniformly distributed in [MinSpeed, maxSpeed].
// A maxSpeed below MinSpeed yields a value in [maxSpeed, MinSpeed].
func (s *Sampler) SampleSpeed(maxSpeed float64) float64 {
	return s.RandomInRange(MinSpeed, maxSpeed)
}

// SampleLifetime returns a particle lifetime uniformly distributed in [min, max] seconds.
func (s *Sampler) SampleLifetime(min, max float64) float64 {
	return s.RandomInRange(min, max)
}

// VelocityFromAngleSpeed converts a launch angle (degrees) and speed into a
// velocity vector. Angles follow screen coordinates: 0° points right and
// 90° points down.
func VelocityFromAngleSpeed(angleDeg, speed float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180.0
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}
