package forestfire

import "slices"

// Lattice is a square grid of cells stored in row-major order.
type Lattice struct {
	n     int
	cells []Cell
}

// NewLattice allocates an n×n lattice of Empty cells. Non-positive sizes
// produce an empty lattice.
func NewLattice(n int) *Lattice {
	if n < 0 {
		n = 0
	}
	return &Lattice{n: n, cells: make([]Cell, n*n)}
}

// N returns the side length.
func (l *Lattice) N() int { return l.n }

// Cells exposes the backing slice in row-major order.
func (l *Lattice) Cells() []Cell { return l.cells }

// Index returns the linear slice index for (row, col).
func (l *Lattice) Index(row, col int) int { return row*l.n + col }

// InBounds reports whether (row, col) lies on the lattice.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.n && col >= 0 && col < l.n
}

// At returns the state at (row, col).
func (l *Lattice) At(row, col int) Cell { return l.cells[row*l.n+col] }

// Set overwrites the state at (row, col).
func (l *Lattice) Set(row, col int, c Cell) { l.cells[row*l.n+col] = c }

// Row returns the cells of a single row. The slice aliases the lattice.
func (l *Lattice) Row(row int) []Cell { return l.cells[row*l.n : (row+1)*l.n] }

// Clone returns an independent deep copy.
func (l *Lattice) Clone() *Lattice {
	return &Lattice{n: l.n, cells: slices.Clone(l.cells)}
}

// Equal reports whether both lattices have the same size and contents.
func (l *Lattice) Equal(o *Lattice) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.n == o.n && slices.Equal(l.cells, o.cells)
}

// Bytes returns the cells as palette indices.
func (l *Lattice) Bytes() []uint8 {
	out := make([]uint8, len(l.cells))
	for i, c := range l.cells {
		out[i] = uint8(c)
	}
	return out
}
