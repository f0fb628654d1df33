package utils

import (
	"testing"
	"time"
)

// fakeNow returns a clock function advanced by the given steps, one per call
func fakeNow(steps ...time.Duration) func() time.Time {
	current := time.Unix(1000, 0)
	i := 0
	return func() time.Time {
		if i < len(steps) {
			current = current.Add(steps[i])
			i++
		}
		return current
	}
}

func TestFrameClock_Tick(t *testing.T) {
	tests := []struct {
		name     string
		maxDelta float64
		steps    []time.Duration
		want     []float64
	}{
		{
			name:     "First tick is zero",
			maxDelta: 0.25,
			steps:    []time.Duration{0},
			want:     []float64{0},
		},
		{
			name:     "Measures elapsed time",
			maxDelta: 0.25,
			steps:    []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond},
			want:     []float64{0, 0.016, 0.020},
		},
		{
			name:     "Caps long frames",
			maxDelta: 0.25,
			steps:    []time.Duration{0, 3 * time.Second},
			want:     []float64{0, 0.25},
		},
		{
			name:     "No cap",
			maxDelta: 0,
			steps:    []time.Duration{0, 3 * time.Second},
			want:     []float64{0, 3},
		},
		{
			name:     "Clock going backwards",
			maxDelta: 0.25,
			steps:    []time.Duration{0, -time.Second},
			want:     []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFrameClock(tt.maxDelta, fakeNow(tt.steps...))
			for i, want := range tt.want {
				got := clock.Tick()
				if diff := got - want; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("Tick %d: expected %.3f, got %.3f", i, want, got)
				}
			}
		})
	}
}

func TestFrameClock_Reset(t *testing.T) {
	clock := newFrameClock(0, fakeNow(0, time.Second, 5*time.Second))

	clock.Tick()
	if got := clock.Tick(); got != 1 {
		t.Fatalf("Expected 1s, got %v", got)
	}

	clock.Reset()
	if got := clock.Tick(); got != 0 {
		t.Errorf("Expected 0 after Reset, got %v", got)
	}
}
