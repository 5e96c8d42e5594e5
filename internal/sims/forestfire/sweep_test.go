package forestfire

import (
	"errors"
	"math"
	"testing"
)

func TestDensitiesInclusive(t *testing.T) {
	got := Densities(0.4, 0.6, 0.05)
	if len(got) != 5 {
		t.Fatalf("expected 5 densities, got %v", got)
	}
	if math.Abs(got[4]-0.6) > 1e-9 {
		t.Fatalf("last density %v, want 0.6", got[4])
	}
	if got := Densities(0.5, 0.5, 0); len(got) != 1 {
		t.Fatalf("degenerate step should yield one density, got %v", got)
	}
}

func TestSweepExtremes(t *testing.T) {
	cfg := SweepConfig{Size: 16, Steps: 200, Trials: 6, Densities: []float64{1, 0}, Seed: 10}
	results, err := Sweep(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Density != 0 || results[1].Density != 1 {
		t.Fatalf("results must be sorted by density: %+v", results)
	}
	if results[0].Trials != 6 || results[1].Trials != 6 {
		t.Fatalf("every trial must be accounted for: %+v", results)
	}
	if results[0].SpanningProbability() != 0 {
		t.Fatalf("barren forest cannot percolate: %+v", results[0])
	}
	if results[1].SpanningProbability() != 1 || results[1].MeanBurned != 1 {
		t.Fatalf("full forest must always percolate and burn out: %+v", results[1])
	}
}

func TestSweepIndependentOfWorkerCount(t *testing.T) {
	cfg := SweepConfig{Size: 20, Steps: 300, Trials: 8, Densities: []float64{0.55, 0.6, 0.65}, Seed: 1}
	one, err := Sweep(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	many, err := Sweep(cfg, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range one {
		if one[i].Percolated != many[i].Percolated || math.Abs(one[i].MeanBurned-many[i].MeanBurned) > 1e-9 {
			t.Fatalf("density %v: %+v vs %+v", one[i].Density, one[i], many[i])
		}
	}
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	cases := []SweepConfig{
		{Size: 0, Steps: 1, Trials: 1, Densities: []float64{0.5}},
		{Size: 5, Steps: 1, Trials: 0, Densities: []float64{0.5}},
		{Size: 5, Steps: 1, Trials: 1, Densities: []float64{1.5}},
	}
	for _, cfg := range cases {
		if _, err := Sweep(cfg, 2); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", cfg, err)
		}
	}
}
