package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/decker502/sparks/internal/particle"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// EmitterPreset describes an emitter independently of where it is spawned.
type EmitterPreset struct {
	Capacity  int     `yaml:"capacity"`  // 粒子数量
	Color     []int   `yaml:"color"`     // [r, g, b]，透明度由粒子寿命决定
	Speed     float64 `yaml:"speed"`     // 最大发射速度（像素/秒）
	Lifetime  string  `yaml:"lifetime"`  // 粒子寿命（秒），如 "[0.5 2]"
	Explosion bool    `yaml:"explosion"` // true: 一次性爆发；false: 持续流
	Duration  string  `yaml:"duration"`  // 发射器寿命（秒），为空表示永久
	Angle     string  `yaml:"angle"`     // 发射角度范围，为空表示全方向
}

// PresetConfig is the root of presets.yaml.
type PresetConfig struct {
	Presets map[string]EmitterPreset `yaml:"presets"`
}

// LoadPresets parses and validates a presets document.
func LoadPresets(data []byte) (*PresetConfig, error) {
	var config PresetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse presets YAML: %w", err)
	}

	if err := validatePresets(&config); err != nil {
		return nil, fmt.Errorf("invalid presets: %w", err)
	}

	return &config, nil
}

// DefaultPresets returns the presets compiled into the binary.
func DefaultPresets() (*PresetConfig, error) {
	return LoadPresets(presetsYAML)
}

// validatePresets checks every preset in name order and returns the first problem found.
func validatePresets(config *PresetConfig) error {
	if len(config.Presets) == 0 {
		return fmt.Errorf("at least one preset is required")
	}

	for _, name := range config.Names() {
		if err := config.Presets[name].validate(); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}

	return nil
}

func (p EmitterPreset) validate() error {
	if p.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", p.Capacity)
	}

	if len(p.Color) != 3 {
		return fmt.Errorf("color must have 3 components [r, g, b], got %d", len(p.Color))
	}
	for _, c := range p.Color {
		if c < 0 || c > 255 {
			return fmt.Errorf("color component %d out of range [0, 255]", c)
		}
	}

	if p.Speed < 0 {
		return fmt.Errorf("speed cannot be negative, got %v", p.Speed)
	}

	minLifetime, maxLifetime, err := particle.ParseValue(p.Lifetime)
	if err != nil {
		return fmt.Errorf("lifetime: %w", err)
	}
	if minLifetime < 0 || maxLifetime <= 0 {
		return fmt.Errorf("lifetime must be positive, got %q", p.Lifetime)
	}

	minDuration, _, err := particle.ParseValue(p.Duration)
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	if minDuration < 0 {
		return fmt.Errorf("duration cannot be negative, got %q", p.Duration)
	}

	if _, _, _, err := particle.ParseAngle(p.Angle); err != nil {
		return fmt.Errorf("angle: %w", err)
	}

	return nil
}

// RGBA returns the preset colour, fully opaque. The particle system
// overwrites alpha every frame with the lifetime fade.
func (p EmitterPreset) RGBA() color.NRGBA {
	c := color.NRGBA{A: 255}
	if len(p.Color) == 3 {
		c.R, c.G, c.B = uint8(p.Color[0]), uint8(p.Color[1]), uint8(p.Color[2])
	}
	return c
}

// Permanent reports whether emitters built from this preset never expire on their own.
func (p EmitterPreset) Permanent() bool {
	return strings.TrimSpace(p.Duration) == ""
}

// GetPreset returns the preset with the given name.
func (c *PresetConfig) GetPreset(name string) (EmitterPreset, bool) {
	preset, ok := c.Presets[name]
	return preset, ok
}

// Names returns the preset names in sorted order.
func (c *PresetConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
