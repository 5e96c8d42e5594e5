package forestfire

import "forestfire/internal/core"

// Replay adapts a finished run to core.Sim so the viewer can loop it. Reset
// draws a fresh forest and runs a new FireSimulation to completion; Step
// moves to the next recorded frame, wrapping back to the first.
type Replay struct {
	cfg  Config
	seed int64

	frames  []*Lattice
	display []uint8
	frame   int
	steps   int
	err     error
}

// NewReplay returns a replay for cfg. Nothing runs until Reset.
func NewReplay(cfg Config) *Replay {
	r := &Replay{cfg: cfg, seed: cfg.Seed}
	r.display = make([]uint8, max(cfg.Size, 0)*max(cfg.Size, 0))
	return r
}

// Name returns the simulation identifier.
func (r *Replay) Name() string { return "forestfire" }

// Size reports the grid dimensions.
func (r *Replay) Size() core.Size { return core.Size{W: r.cfg.Size, H: r.cfg.Size} }

// Cells exposes the current frame as palette indices.
func (r *Replay) Cells() []uint8 { return r.display }

// Config returns the active configuration.
func (r *Replay) Config() Config { return r.cfg }

// Seed returns the seed of the current run.
func (r *Replay) Seed() int64 { return r.seed }

// Err returns the error from the most recent run, if any.
func (r *Replay) Err() error { return r.err }

// Frames returns the recorded snapshot sequence.
func (r *Replay) Frames() []*Lattice { return r.frames }

// Frame returns the index of the frame on display.
func (r *Replay) Frame() int { return r.frame }

// Steps reports how many propagation steps the last run executed.
func (r *Replay) Steps() int { return r.steps }

// Current returns the frame on display, or nil before the first run.
func (r *Replay) Current() *Lattice {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[r.frame]
}

// Census tallies the frame on display.
func (r *Replay) Census() Census {
	cur := r.Current()
	if cur == nil {
		return Census{}
	}
	return cur.Census()
}

// Reset runs a new simulation. A zero seed reuses the configured seed.
func (r *Replay) Reset(seed int64) {
	if seed == 0 {
		seed = r.cfg.Seed
	}
	r.seed = seed
	r.err = r.run()
}

// Step advances to the next recorded frame.
func (r *Replay) Step() {
	if len(r.frames) == 0 {
		return
	}
	r.frame = (r.frame + 1) % len(r.frames)
	r.refreshDisplay()
}

func (r *Replay) apply(cfg Config) bool {
	if err := cfg.Validate(); err != nil {
		return false
	}
	r.cfg = cfg
	r.err = r.run()
	return r.err == nil
}

func (r *Replay) run() error {
	r.frames = nil
	r.frame = 0
	r.steps = 0
	sim, err := New(r.cfg.Size, r.cfg.Density, core.NewRNG(r.seed).Source())
	if err != nil {
		r.display = r.display[:0]
		return err
	}
	r.frames = sim.Run(r.cfg.Steps)
	r.steps = sim.Steps()
	r.refreshDisplay()
	return nil
}

func (r *Replay) refreshDisplay() {
	cur := r.frames[r.frame]
	total := len(cur.cells)
	if cap(r.display) < total {
		r.display = make([]uint8, total)
	}
	r.display = r.display[:total]
	for i, c := range cur.cells {
		r.display[i] = uint8(c)
	}
}

func init() {
	core.Register("forestfire", func(cfg map[string]string) core.Sim {
		return NewReplay(FromMap(cfg))
	})
}
