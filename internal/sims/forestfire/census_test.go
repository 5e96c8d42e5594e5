package forestfire

import "testing"

func TestCensusFractions(t *testing.T) {
	l := latticeFrom(t,
		"T.F",
		"x..",
		"TT.",
	)
	c := l.Census()
	if c.Empty != 4 || c.Unignited != 3 || c.Burning != 1 || c.Burned != 1 {
		t.Fatalf("unexpected census %+v", c)
	}
	if got := c.TreeFraction(); got != 5.0/9.0 {
		t.Fatalf("tree fraction %f", got)
	}
	if got := c.BurnedFraction(); got != 2.0/5.0 {
		t.Fatalf("burned fraction %f", got)
	}
	if (Census{}).BurnedFraction() != 0 || (Census{}).TreeFraction() != 0 {
		t.Fatal("empty census fractions must be zero")
	}
}

func TestPercolated(t *testing.T) {
	cases := []struct {
		rows []string
		want bool
	}{
		{rows: []string{"x..", "x..", "T.."}, want: false},
		{rows: []string{"x..", "x..", ".x."}, want: true},
		{rows: []string{"...", "...", "..F"}, want: true},
	}
	for i, tc := range cases {
		if got := Percolated(latticeFrom(t, tc.rows...)); got != tc.want {
			t.Fatalf("case %d: Percolated=%v, want %v", i, got, tc.want)
		}
	}
	if Percolated(nil) {
		t.Fatal("nil lattice cannot percolate")
	}
}

func TestHistoryTracksEveryFrame(t *testing.T) {
	sim := mustSim(t,
		"...",
		"TTF",
		"...",
	)
	frames := sim.Run(10)
	hist := History(frames)
	if len(hist) != len(frames) {
		t.Fatalf("history length %d, frames %d", len(hist), len(frames))
	}
	last := hist[len(hist)-1]
	if last.Burned != 3 || last.Burning != 0 {
		t.Fatalf("final census %+v", last)
	}
}
