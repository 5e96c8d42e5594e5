package forestfire

import (
	"errors"
	"math"
	"testing"
)

func TestFromMapParsesAndIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"n":    "64",
		"p":    "0.59",
		"t":    "300",
		"seed": "7",
	})
	if cfg.Size != 64 || cfg.Density != 0.59 || cfg.Steps != 300 || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	def := DefaultConfig()
	bad := FromMap(map[string]string{
		"n": "-2",
		"p": "1.5",
		"t": "many",
	})
	if bad.Size != def.Size || bad.Density != def.Density || bad.Steps != def.Steps {
		t.Fatalf("bad values should keep defaults, got %+v", bad)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should return defaults")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cases := []Config{
		{Size: 0, Density: 0.5, Steps: 1},
		{Size: 5, Density: -1, Steps: 1},
		{Size: 5, Density: math.NaN(), Steps: 1},
		{Size: 5, Density: 0.5, Steps: -1},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", cfg, err)
		}
	}
}
