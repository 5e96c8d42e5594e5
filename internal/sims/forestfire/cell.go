package forestfire

// Cell enumerates the lattice states. The numeric values double as palette
// indices.
type Cell uint8

const (
	Empty Cell = iota
	Unignited
	Burning
	Burned
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Unignited:
		return "unignited"
	case Burning:
		return "burning"
	case Burned:
		return "burned"
	default:
		return "invalid"
	}
}

// IsTree reports whether the cell holds (or held) a tree.
func (c Cell) IsTree() bool { return c != Empty }
