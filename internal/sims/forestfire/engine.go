package forestfire

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrInvalidParameter reports a construction parameter outside its domain.
// Values are rejected rather than clamped.
var ErrInvalidParameter = errors.New("forestfire: invalid parameter")

// FireSimulation owns a lattice and burns it from the top edge down.
//
// Fire spreads to the right and downward neighbours within the same step,
// cascading along the scan, while upward and leftward neighbours only catch
// on the following step. The scan runs column by column and, inside each
// column, row by row, mutating the live lattice as it goes.
//
// A FireSimulation is not safe for concurrent use.
type FireSimulation struct {
	lat *Lattice

	// pending holds indices queued to ignite on the next step; queued
	// marks membership so a cell is never queued twice.
	pending []int
	queued  []bool

	ignited bool
	steps   int
}

// New draws an n×n forest where each cell independently holds a tree with
// probability p. All randomness comes from rng.
func New(n int, p float64, rng *rand.Rand) (*FireSimulation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: lattice size %d must be positive", ErrInvalidParameter, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidParameter, p)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	lat := NewLattice(n)
	for i := range lat.cells {
		if rng.Float64() < p {
			lat.cells[i] = Unignited
		}
	}
	return newSimulation(lat), nil
}

// NewFromLattice builds a simulation over a copy of lat. The caller keeps
// ownership of lat.
func NewFromLattice(lat *Lattice) (*FireSimulation, error) {
	if lat == nil || lat.n <= 0 {
		return nil, fmt.Errorf("%w: empty lattice", ErrInvalidParameter)
	}
	for i, c := range lat.cells {
		if c > Burned {
			return nil, fmt.Errorf("%w: cell %d has state %d", ErrInvalidParameter, i, c)
		}
	}
	return newSimulation(lat.Clone()), nil
}

func newSimulation(lat *Lattice) *FireSimulation {
	return &FireSimulation{
		lat:    lat,
		queued: make([]bool, len(lat.cells)),
	}
}

// N returns the lattice side length.
func (s *FireSimulation) N() int { return s.lat.n }

// Steps reports how many propagation steps have executed.
func (s *FireSimulation) Steps() int { return s.steps }

// Ignited reports whether BeginFire has run.
func (s *FireSimulation) Ignited() bool { return s.ignited }

// Lattice returns a copy of the live lattice.
func (s *FireSimulation) Lattice() *Lattice { return s.lat.Clone() }

// BeginFire sets every tree on the top row alight. Only the first call has
// an effect.
func (s *FireSimulation) BeginFire() {
	if s.ignited {
		return
	}
	s.ignited = true
	top := s.lat.Row(0)
	for i, c := range top {
		if c == Unignited {
			top[i] = Burning
		}
	}
}

// Step runs one propagation cycle: the in-place scan, burn-out of every
// burning cell, then ignition of the cells queued during the scan.
func (s *FireSimulation) Step() {
	s.spread()
	s.burnOut()
	s.igniteQueued()
	s.steps++
}

func (s *FireSimulation) spread() {
	n := s.lat.n
	cells := s.lat.cells
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			idx := row*n + col
			if cells[idx] != Burning {
				continue
			}
			if col < n-1 && cells[idx+1] == Unignited {
				cells[idx+1] = Burning
			}
			if row < n-1 && cells[idx+n] == Unignited {
				cells[idx+n] = Burning
			}
			if row > 0 && cells[idx-n] == Unignited {
				s.queue(idx - n)
			}
			if col > 0 && cells[idx-1] == Unignited {
				s.queue(idx - 1)
			}
		}
	}
}

func (s *FireSimulation) queue(idx int) {
	if s.queued[idx] {
		return
	}
	s.queued[idx] = true
	s.pending = append(s.pending, idx)
}

func (s *FireSimulation) burnOut() {
	cells := s.lat.cells
	for i, c := range cells {
		if c == Burning {
			cells[i] = Burned
		}
	}
}

func (s *FireSimulation) igniteQueued() {
	cells := s.lat.cells
	for _, idx := range s.pending {
		// Guard keeps the state progression monotonic.
		if cells[idx] == Unignited {
			cells[idx] = Burning
		}
		s.queued[idx] = false
	}
	s.pending = s.pending[:0]
}

// Done reports whether a run should stop: either nothing is burning above
// the bottom row, or the fire has reached the bottom row.
func (s *FireSimulation) Done() bool {
	n := s.lat.n
	last := (n - 1) * n
	burningAbove := false
	for _, c := range s.lat.cells[:last] {
		if c == Burning {
			burningAbove = true
			break
		}
	}
	if !burningAbove {
		return true
	}
	for _, c := range s.lat.cells[last:] {
		if c == Burning {
			return true
		}
	}
	return false
}

// Run ignites the top row (if not already burning) and advances at most
// steps cycles. The returned sequence starts with the ignited lattice and
// holds one independent copy per executed step; it stops right after the
// first snapshot for which Done holds.
func (s *FireSimulation) Run(steps int) []*Lattice {
	if steps < 0 {
		steps = 0
	}
	s.BeginFire()
	frames := make([]*Lattice, 0, min(steps, 256)+1)
	frames = append(frames, s.lat.Clone())
	for i := 0; i < steps; i++ {
		s.Step()
		frames = append(frames, s.lat.Clone())
		if s.Done() {
			break
		}
	}
	return frames
}
