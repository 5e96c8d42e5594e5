package forestfire

import (
	"slices"
	"testing"

	"forestfire/internal/core"
)

func TestReplayRegistered(t *testing.T) {
	factory, ok := core.Sims()["forestfire"]
	if !ok {
		t.Fatal("forestfire sim not registered")
	}
	sim := factory(map[string]string{"n": "12"})
	if got := sim.Size(); got.W != 12 || got.H != 12 {
		t.Fatalf("unexpected size %+v", got)
	}
}

func TestReplayLoopsFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	r := NewReplay(cfg)
	r.Reset(0)
	if r.Err() != nil {
		t.Fatal(r.Err())
	}
	if r.Seed() != cfg.Seed {
		t.Fatalf("zero seed should fall back to config seed, got %d", r.Seed())
	}
	frames := r.Frames()
	if len(frames) != r.Steps()+1 {
		t.Fatalf("%d frames for %d steps", len(frames), r.Steps())
	}
	if !slices.Equal(r.Cells(), frames[0].Bytes()) {
		t.Fatal("display should start on the first frame")
	}
	for i := 1; i < len(frames); i++ {
		r.Step()
		if r.Frame() != i {
			t.Fatalf("frame %d, want %d", r.Frame(), i)
		}
		if !slices.Equal(r.Cells(), frames[i].Bytes()) {
			t.Fatalf("display mismatch at frame %d", i)
		}
	}
	r.Step()
	if r.Frame() != 0 {
		t.Fatalf("replay should wrap to the first frame, got %d", r.Frame())
	}
}

func TestReplayResetIsDeterministic(t *testing.T) {
	r := NewReplay(DefaultConfig())
	r.Reset(99)
	first := slices.Clone(r.Frames())
	r.Step()
	r.Reset(99)
	if r.Frame() != 0 {
		t.Fatal("Reset must rewind to the first frame")
	}
	if len(first) != len(r.Frames()) {
		t.Fatal("same seed produced a different run length")
	}
	for i := range first {
		if !first[i].Equal(r.Frames()[i]) {
			t.Fatalf("frame %d differs for the same seed", i)
		}
	}
}

func TestReplaySetters(t *testing.T) {
	r := NewReplay(DefaultConfig())
	r.Reset(5)

	if !r.SetIntParameter("n", 10) {
		t.Fatal("expected n to be adjustable")
	}
	if r.Size().W != 10 || len(r.Cells()) != 100 {
		t.Fatalf("size not applied: %+v, %d cells", r.Size(), len(r.Cells()))
	}
	if !r.SetFloatParameter("p", 0) {
		t.Fatal("expected p to be adjustable")
	}
	if got := r.Census().Trees(); got != 0 {
		t.Fatalf("p=0 should produce no trees, got %d", got)
	}
	if r.SetFloatParameter("p", 2) {
		t.Fatal("out of range density must be rejected")
	}
	if r.Config().Density != 0 {
		t.Fatalf("rejected value leaked into config: %v", r.Config().Density)
	}
	if r.SetIntParameter("t", -1) {
		t.Fatal("negative step budget must be rejected")
	}
	if r.SetIntParameter("unknown", 1) || r.SetFloatParameter("n", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	snap := r.Parameters()
	if p, ok := snap.Lookup("n"); !ok || p.Value != "10" {
		t.Fatalf("snapshot n=%+v", p)
	}
	if _, ok := snap.Lookup("burned"); !ok {
		t.Fatal("snapshot should report run statistics")
	}
}

func TestReplayPaletteCoversStates(t *testing.T) {
	r := NewReplay(DefaultConfig())
	if len(r.Palette()) != int(Burned)+1 {
		t.Fatalf("palette has %d entries", len(r.Palette()))
	}
}
