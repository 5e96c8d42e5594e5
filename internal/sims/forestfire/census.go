package forestfire

// Census counts cells per state.
type Census struct {
	Empty     int
	Unignited int
	Burning   int
	Burned    int
}

// Census tallies the lattice.
func (l *Lattice) Census() Census {
	var c Census
	for _, cell := range l.cells {
		switch cell {
		case Empty:
			c.Empty++
		case Unignited:
			c.Unignited++
		case Burning:
			c.Burning++
		case Burned:
			c.Burned++
		}
	}
	return c
}

// Total is the number of cells.
func (c Census) Total() int { return c.Empty + c.Unignited + c.Burning + c.Burned }

// Trees counts cells that hold or held a tree.
func (c Census) Trees() int { return c.Unignited + c.Burning + c.Burned }

// TreeFraction is the share of cells holding a tree in any state.
func (c Census) TreeFraction() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Trees()) / float64(total)
}

// BurnedFraction is the share of trees that are burned or burning.
func (c Census) BurnedFraction() float64 {
	trees := c.Trees()
	if trees == 0 {
		return 0
	}
	return float64(c.Burning+c.Burned) / float64(trees)
}

// History tallies every frame of a run.
func History(frames []*Lattice) []Census {
	out := make([]Census, len(frames))
	for i, f := range frames {
		out[i] = f.Census()
	}
	return out
}

// Percolated reports whether fire, burning or burned, reached the bottom row.
func Percolated(l *Lattice) bool {
	if l == nil || l.n == 0 {
		return false
	}
	for _, c := range l.Row(l.n - 1) {
		if c == Burning || c == Burned {
			return true
		}
	}
	return false
}
