package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"forestfire/internal/core"
	"forestfire/internal/sims/forestfire"
)

func sampleRun(t *testing.T) []*forestfire.Lattice {
	t.Helper()
	sim, err := forestfire.New(12, 0.65, core.NewRNG(3).Source())
	if err != nil {
		t.Fatal(err)
	}
	return sim.Run(20)
}

func TestWriteAnimationProducesAVI(t *testing.T) {
	frames := sampleRun(t)
	path := filepath.Join(t.TempDir(), "fire.avi")
	if err := WriteAnimation(path, frames, AnimationOptions{Scale: 4}); err != nil {
		t.Fatalf("WriteAnimation: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatalf("output is not an AVI container (%d bytes)", len(data))
	}
}

func TestWriteAnimationRejectsEmptySequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.avi")
	if err := WriteAnimation(path, nil, AnimationOptions{}); !errors.Is(err, ErrTooFewFrames) {
		t.Fatalf("expected ErrTooFewFrames, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file should be created for an empty sequence")
	}
}

func TestWriteBurnChartRendersPNG(t *testing.T) {
	frames := sampleRun(t)
	if len(frames) < 2 {
		t.Fatalf("sample run too short: %d frames", len(frames))
	}
	var buf bytes.Buffer
	if err := WriteBurnChart(&buf, frames); err != nil {
		t.Fatalf("WriteBurnChart: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("unexpected chart size %v", b)
	}
}

func TestWriteBurnChartNeedsTwoFrames(t *testing.T) {
	frames := sampleRun(t)[:1]
	var buf bytes.Buffer
	if err := WriteBurnChart(&buf, frames); !errors.Is(err, ErrTooFewFrames) {
		t.Fatalf("expected ErrTooFewFrames, got %v", err)
	}
}

func TestNewBurnSeriesFractions(t *testing.T) {
	series := NewBurnSeries([]forestfire.Census{
		{Empty: 5, Unignited: 3, Burning: 1},
		{Empty: 5, Burning: 1, Burned: 3},
		{Empty: 9},
	})
	if series.Intact[0] != 0.75 || series.Burning[0] != 0.25 {
		t.Fatalf("step 0 fractions %v %v", series.Intact[0], series.Burning[0])
	}
	if series.Burned[1] != 0.75 {
		t.Fatalf("step 1 burned fraction %v", series.Burned[1])
	}
	if series.Steps[2] != 2 || series.Intact[2] != 0 {
		t.Fatal("treeless steps should report zero fractions")
	}
}
