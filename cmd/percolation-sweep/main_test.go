package main

import (
	"math"
	"testing"

	"forestfire/internal/sims/forestfire"
)

func TestThresholdInterpolates(t *testing.T) {
	results := []forestfire.SweepResult{
		{Density: 0.5, Trials: 10, Percolated: 2},
		{Density: 0.6, Trials: 10, Percolated: 8},
	}
	pc, ok := threshold(results)
	if !ok {
		t.Fatal("expected a crossing")
	}
	if math.Abs(pc-0.55) > 1e-9 {
		t.Fatalf("p_c=%v, want 0.55", pc)
	}
	if _, ok := threshold(results[:1]); ok {
		t.Fatal("a single density has no crossing")
	}
}
