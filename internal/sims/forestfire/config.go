package forestfire

import (
	"fmt"
	"math"
	"strconv"
)

// Config holds the three run parameters plus the seed for the random draw.
type Config struct {
	Size    int
	Density float64
	Steps   int
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 30, Density: 0.6, Steps: 20, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["t"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: lattice size %d must be positive", ErrInvalidParameter, c.Size)
	}
	if math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidParameter, c.Density)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: step budget %d must not be negative", ErrInvalidParameter, c.Steps)
	}
	return nil
}
