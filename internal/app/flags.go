package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	FPS      float64
	Seed     int64
	HUDWidth int

	Size    int
	Density float64
	Steps   int
}

// NewConfig returns a Config populated with the viewer defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "forestfire",
		Scale:    16,
		TPS:      60,
		FPS:      1,
		Seed:     42,
		HUDWidth: 220,
		Size:     30,
		Density:  0.6,
		Steps:    20,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "snapshots shown per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the forest draw")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Size, "n", c.Size, "lattice size N (N×N cells)")
	fs.Float64Var(&c.Density, "p", c.Density, "tree density in [0,1]")
	fs.IntVar(&c.Steps, "t", c.Steps, "step budget")
}

// SimParams renders the forest parameters as a factory configuration map.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"n":    strconv.Itoa(c.Size),
		"p":    strconv.FormatFloat(c.Density, 'f', -1, 64),
		"t":    strconv.Itoa(c.Steps),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
