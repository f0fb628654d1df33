package systems

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/decker502/sparks/internal/particle"
	"github.com/decker502/sparks/pkg/components"
)

// MinParticleLifetime is the smallest lifetime a particle can be given.
// Sampled lifetimes are clamped to it so the fade ratio never divides by zero.
const MinParticleLifetime = 1e-4

var (
	// ErrInvalidEmitter is returned by Add when the emitter parameters are malformed.
	ErrInvalidEmitter = errors.New("invalid emitter parameters")

	// ErrEmitterIDsExhausted is returned by Add once every 16-bit emitter ID has been handed out.
	ErrEmitterIDsExhausted = errors.New("emitter ids exhausted")
)

// Sampler provides the random values used when (re)spawning particles.
// *particle.Sampler is the production implementation.
type Sampler interface {
	SampleAngle(directional bool, base, deviation float64) float64
	SampleSpeed(maxSpeed float64) float64
	SampleLifetime(min, max float64) float64
}

// ParticleSystem owns every emitter and its particle pool.
//
// Each frame the driver calls Update once, then reads the render points with
// CollectVertices (or AppendVertices). Emitters are created with Add and
// soft-deleted with Remove; a removed emitter keeps fading out until all of
// its particles have expired, after which Update drops it.
//
// ParticleSystem is single-threaded: all methods must be called from the
// frame loop goroutine.
type ParticleSystem struct {
	sampler  Sampler
	emitters []*components.Emitter
	lastID   uint16
}

// NewParticleSystem creates a new ParticleSystem drawing its random values from sampler.
func NewParticleSystem(sampler Sampler) *ParticleSystem {
	return &ParticleSystem{
		sampler:  sampler,
		emitters: make([]*components.Emitter, 0),
	}
}

// Add creates a new emitter and returns its ID.
//
// Every particle receives an initial lifetime in [0, MaxLifetime], which
// staggers the first fade of an explosion. Explosion particles are launched
// immediately and start with the emitter colour; stream particles stay
// transparent at the origin until their first respawn.
func (ps *ParticleSystem) Add(params components.EmitterParams) (uint16, error) {
	if err := validateEmitterParams(params); err != nil {
		return 0, err
	}
	if ps.lastID == math.MaxUint16 {
		return 0, ErrEmitterIDsExhausted
	}
	ps.lastID++

	emitter := &components.Emitter{
		ID:          ps.lastID,
		Position:    params.Position,
		Capacity:    params.Capacity,
		Particles:   make([]components.Particle, params.Capacity),
		Vertices:    make([]components.Vertex, params.Capacity),
		Color:       params.Color,
		Speed:       params.Speed,
		MinLifetime: params.MinLifetime,
		MaxLifetime: params.MaxLifetime,
		Explosion:   params.Explosion,
		Permanent:   params.Permanent,
		Remaining:   params.Lifetime,
		Directional: params.Directional,
		Angle:       params.Angle,
		Deviation:   params.Deviation,
		Alive:       true,
	}

	for i := range emitter.Particles {
		p := &emitter.Particles[i]
		if emitter.Explosion {
			p.Velocity = ps.launchVelocity(emitter)
		}
		p.Lifetime = clampLifetime(ps.sampler.SampleLifetime(0, emitter.MaxLifetime))
		p.OriginalLifetime = p.Lifetime
	}

	initialColor := components.Transparent
	if emitter.Explosion {
		initialColor = emitter.Color
	}
	for i := range emitter.Vertices {
		emitter.Vertices[i] = components.Vertex{
			Position: emitter.Position,
			Color:    initialColor,
		}
	}

	ps.emitters = append(ps.emitters, emitter)

	log.Printf("[ParticleSystem] Added emitter %d: %d particles at (%.1f, %.1f), explosion=%v, permanent=%v",
		emitter.ID, emitter.Capacity, emitter.Position.X, emitter.Position.Y, emitter.Explosion, emitter.Permanent)

	return emitter.ID, nil
}

// Remove marks the emitter with the given ID as no longer alive.
// Its particles are not respawned any more and the emitter is dropped by
// Update once they have all expired. Unknown IDs are ignored, and removing
// the same emitter twice has no further effect.
func (ps *ParticleSystem) Remove(id uint16) {
	if emitter, ok := ps.Emitter(id); ok {
		emitter.Alive = false
	}
}

// RemoveAll marks every emitter as no longer alive.
func (ps *ParticleSystem) RemoveAll() {
	for _, emitter := range ps.emitters {
		emitter.Alive = false
	}
}

// Update advances every emitter by dt seconds.
//
// Negative or non-finite deltas are treated as zero; large deltas are
// applied as-is and simply produce large jumps.
func (ps *ParticleSystem) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	// Compact in place, preserving emitter order
	kept := 0
	for _, emitter := range ps.emitters {
		if ps.updateEmitter(emitter, dt) {
			ps.emitters[kept] = emitter
			kept++
		}
	}
	for i := kept; i < len(ps.emitters); i++ {
		ps.emitters[i] = nil
	}
	ps.emitters = ps.emitters[:kept]
}

// updateEmitter advances one emitter and reports whether it must be kept.
func (ps *ParticleSystem) updateEmitter(emitter *components.Emitter, dt float64) bool {
	if !emitter.Permanent {
		emitter.Remaining -= dt
		if emitter.Remaining <= 0 {
			emitter.Alive = false
		}
	}

	// Number of particles that are still live or fading this frame
	draining := emitter.Capacity

	for i := range emitter.Particles {
		p := &emitter.Particles[i]
		v := &emitter.Vertices[i]

		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			v.Position = emitter.Position
			if emitter.Alive {
				ps.respawn(emitter, p, v)
			} else {
				v.Color = components.Transparent
				draining--
			}
		}

		v.Position = v.Position.Add(p.Velocity.Scale(dt))
		v.Color.A = fadeAlpha(p.Lifetime, p.OriginalLifetime)
	}

	return draining > 0
}

// respawn relaunches an expired particle from the emitter origin.
func (ps *ParticleSystem) respawn(emitter *components.Emitter, p *components.Particle, v *components.Vertex) {
	p.Velocity = ps.launchVelocity(emitter)
	p.Lifetime = clampLifetime(ps.sampler.SampleLifetime(emitter.MinLifetime, emitter.MaxLifetime))
	p.OriginalLifetime = p.Lifetime

	// Stream particles light up on their first respawn
	if !emitter.Explosion {
		v.Color = emitter.Color
	}
}

func (ps *ParticleSystem) launchVelocity(emitter *components.Emitter) components.Vec2 {
	angle := ps.sampler.SampleAngle(emitter.Directional, emitter.Angle, emitter.Deviation)
	speed := ps.sampler.SampleSpeed(emitter.Speed)
	vx, vy := particle.VelocityFromAngleSpeed(angle, speed)
	return components.Vec2{X: vx, Y: vy}
}

// CollectVertices returns a freshly built slice of every render point,
// in emitter order and then particle order.
func (ps *ParticleSystem) CollectVertices() []components.Vertex {
	return ps.AppendVertices(make([]components.Vertex, 0, ps.VertexCount()))
}

// AppendVertices appends every render point to dst and returns the extended
// slice. Drivers pass dst[:0] of a reused buffer to avoid per-frame allocations.
func (ps *ParticleSystem) AppendVertices(dst []components.Vertex) []components.Vertex {
	for _, emitter := range ps.emitters {
		dst = append(dst, emitter.Vertices...)
	}
	return dst
}

// Emitter returns the emitter with the given ID.
func (ps *ParticleSystem) Emitter(id uint16) (*components.Emitter, bool) {
	for _, emitter := range ps.emitters {
		if emitter.ID == id {
			return emitter, true
		}
	}
	return nil, false
}

// IDs returns the IDs of all retained emitters in update order.
func (ps *ParticleSystem) IDs() []uint16 {
	ids := make([]uint16, 0, len(ps.emitters))
	for _, emitter := range ps.emitters {
		ids = append(ids, emitter.ID)
	}
	return ids
}

// EmitterCount returns the number of retained emitters, including those still draining.
func (ps *ParticleSystem) EmitterCount() int {
	return len(ps.emitters)
}

// VertexCount returns the number of render points CollectVertices would return.
func (ps *ParticleSystem) VertexCount() int {
	total := 0
	for _, emitter := range ps.emitters {
		total += emitter.Capacity
	}
	return total
}

// fadeAlpha maps the remaining fraction of a particle's lifetime to an alpha value.
func fadeAlpha(lifetime, original float64) uint8 {
	if original <= 0 {
		return 0
	}
	ratio := lifetime / original
	if !(ratio > 0) {
		return 0
	}
	if ratio >= 1 {
		return 255
	}
	return uint8(ratio * 255)
}

func clampLifetime(lifetime float64) float64 {
	if !(lifetime >= MinParticleLifetime) {
		return MinParticleLifetime
	}
	return lifetime
}

// validateEmitterParams returns the first problem found in params.
func validateEmitterParams(p components.EmitterParams) error {
	if p.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidEmitter, p.Capacity)
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"speed", p.Speed},
		{"minLifetime", p.MinLifetime},
		{"maxLifetime", p.MaxLifetime},
		{"lifetime", p.Lifetime},
		{"deviation", p.Deviation},
	}
	for _, f := range nonNegative {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidEmitter, f.name, f.value)
		}
	}

	if p.MinLifetime > p.MaxLifetime {
		return fmt.Errorf("%w: minLifetime %v exceeds maxLifetime %v", ErrInvalidEmitter, p.MinLifetime, p.MaxLifetime)
	}

	for _, v := range []float64{p.Position.X, p.Position.Y, p.Angle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: position and angle must be finite, got %v", ErrInvalidEmitter, v)
		}
	}

	return nil
}
