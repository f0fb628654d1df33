package entities

import (
	"fmt"
	"log"

	"github.com/decker502/sparks/internal/particle"
	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/systems"
)

// RangeSampler picks a value inside a parsed preset range.
// *particle.Sampler implements it.
type RangeSampler interface {
	RandomInRange(min, max float64) float64
}

// EmitterParamsFromPreset converts a preset into the arguments of ParticleSystem.Add.
//
// Parameters:
//   - preset: emitter preset loaded from presets.yaml
//   - rs: picks the emitter lifetime when the preset duration is a range
//   - worldX, worldY: emitter origin
func EmitterParamsFromPreset(preset config.EmitterPreset, rs RangeSampler, worldX, worldY float64) (components.EmitterParams, error) {
	minLifetime, maxLifetime, err := particle.ParseValue(preset.Lifetime)
	if err != nil {
		return components.EmitterParams{}, fmt.Errorf("failed to parse lifetime: %w", err)
	}

	angle, deviation, directional, err := particle.ParseAngle(preset.Angle)
	if err != nil {
		return components.EmitterParams{}, fmt.Errorf("failed to parse angle: %w", err)
	}

	params := components.EmitterParams{
		Capacity:    preset.Capacity,
		Position:    components.Vec2{X: worldX, Y: worldY},
		Color:       preset.RGBA(),
		Speed:       preset.Speed,
		MinLifetime: minLifetime,
		MaxLifetime: maxLifetime,
		Explosion:   preset.Explosion,
		Permanent:   preset.Permanent(),
		Directional: directional,
		Angle:       angle,
		Deviation:   deviation,
	}

	if !params.Permanent {
		durationMin, durationMax, err := particle.ParseValue(preset.Duration)
		if err != nil {
			return components.EmitterParams{}, fmt.Errorf("failed to parse duration: %w", err)
		}
		params.Lifetime = rs.RandomInRange(durationMin, durationMax)
	}

	return params, nil
}

// CreateParticleEffect adds an emitter built from the named preset at the given position.
//
// Example:
//
//	id, err := CreateParticleEffect(ps, presets, sampler, "burst", 320, 240)
//	if err != nil {
//	    log.Printf("Failed to create particle effect: %v", err)
//	}
func CreateParticleEffect(ps *systems.ParticleSystem, presets *config.PresetConfig, rs RangeSampler, name string, worldX, worldY float64) (uint16, error) {
	preset, ok := presets.GetPreset(name)
	if !ok {
		return 0, fmt.Errorf("unknown particle preset '%s'", name)
	}

	params, err := EmitterParamsFromPreset(preset, rs, worldX, worldY)
	if err != nil {
		return 0, fmt.Errorf("invalid particle preset '%s': %w", name, err)
	}

	id, err := ps.Add(params)
	if err != nil {
		return 0, fmt.Errorf("failed to add emitter for preset '%s': %w", name, err)
	}

	log.Printf("[EffectFactory] Spawned '%s' as emitter %d at (%.0f, %.0f)", name, id, worldX, worldY)
	return id, nil
}
