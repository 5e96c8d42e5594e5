package app

import (
	"flag"
	"testing"

	"forestfire/internal/sims/forestfire"
)

func TestBindParsesForestFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-n", "48", "-p", "0.55", "-t", "90", "-seed", "3", "-fps", "2.5"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 48 || cfg.Density != 0.55 || cfg.Steps != 90 || cfg.Seed != 3 || cfg.FPS != 2.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	simCfg := forestfire.FromMap(cfg.SimParams())
	want := forestfire.Config{Size: 48, Density: 0.55, Steps: 90, Seed: 3}
	if simCfg != want {
		t.Fatalf("SimParams round trip %+v, want %+v", simCfg, want)
	}
}
