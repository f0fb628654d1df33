// Package particle provides the random sampling and value parsing helpers
// used to spawn particles from emitter presets.
package particle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue parses a value string from an emitter preset.
// Supports two formats:
//   - Fixed value: "50" → min=50, max=50
//   - Range: "[0.5 2]" → min=0.5, max=2 ("[7]" is treated as a fixed value)
//
// An empty string parses as 0. Ranges given in descending order are
// normalized so that min <= max.
func ParseValue(s string) (min, max float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}

	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return 0, 0, fmt.Errorf("unbalanced brackets in value %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := parseFloat(parts[0])
			if err != nil {
				return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
			}
			return v, v, nil
		case 2:
			lo, err := parseFloat(parts[0])
			if err != nil {
				return 0, 0, fmt.Errorf("invalid range start in %q: %w", s, err)
			}
			hi, err := parseFloat(parts[1])
			if err != nil {
				return 0, 0, fmt.Errorf("invalid range end in %q: %w", s, err)
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			return lo, hi, nil
		default:
			return 0, 0, fmt.Errorf("range %q must have one or two values, got %d", s, len(parts))
		}
	}

	v, err := parseFloat(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, v, nil
}

// ParseAngle parses a launch angle string into a base angle and a deviation.
// "[70 110]" → base=90, deviation=20; "90" → base=90, deviation=0.
// An empty string means omnidirectional and reports directional=false.
func ParseAngle(s string) (base, deviation float64, directional bool, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, false, nil
	}
	lo, hi, err := ParseValue(s)
	if err != nil {
		return 0, 0, false, err
	}
	return (lo + hi) / 2, (hi - lo) / 2, true, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
