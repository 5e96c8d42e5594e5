package core

import "time"

// FixedStep paces frame advances at a steady interval independent of the
// host's tick rate. The viewer ticks at 60 TPS but replays fire snapshots at
// roughly one per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires fps times per second.
// Fractional rates are allowed; non-positive rates fall back to 1.
func NewFixedStep(fps float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	return fs
}

// SetFPS changes the advance rate. It is safe to call from the main loop.
func (f *FixedStep) SetFPS(fps float64) {
	if fps <= 0 {
		fps = 1
	}
	f.step = time.Duration(float64(time.Second) / fps)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Interval reports the time between advances.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the caller should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
