package sudoku

import "math/bits"

// CellSet is a candidate set over the digits 1-9, one bit per digit.
type CellSet uint16

// FullSet has all nine digits as candidates.
const FullSet CellSet = 0b1111111110

func SetOf(value uint8) CellSet {
	return 1 << value
}

func (s CellSet) Has(value uint8) bool {
	return s&(1<<value) != 0
}

func (s CellSet) Without(value uint8) CellSet {
	return s &^ (1 << value)
}

func (s CellSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Sole returns the only member of a singleton set.
func (s CellSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Digits lists the members in ascending order.
func (s CellSet) Digits() []uint8 {
	digits := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= Size; v++ {
		if s.Has(v) {
			digits = append(digits, v)
		}
	}
	return digits
}

// PossibilityGrid holds a candidate set per cell. It is the working
// state of a single solve call: built from the input grid, narrowed in
// place by elimination passes and consulted by the search.
type PossibilityGrid [CellCount]CellSet

// NewPossibilityGrid builds the initial candidate sets: a clue cell
// becomes a singleton, a blank cell admits every digit.
func NewPossibilityGrid(g *Grid) *PossibilityGrid {
	var pg PossibilityGrid
	for i, v := range g {
		if v == 0 {
			pg[i] = FullSet
		} else {
			pg[i] = SetOf(v)
		}
	}
	return &pg
}

// Resolved reports whether every cell is down to a single candidate.
func (pg *PossibilityGrid) Resolved() bool {
	for _, s := range pg {
		if s.Count() != 1 {
			return false
		}
	}
	return true
}

// Extract copies every resolved cell to an output grid. Open cells are
// left blank, so a failed solve still yields its best-effort partial
// grid.
func (pg *PossibilityGrid) Extract() Grid {
	var g Grid
	for i, s := range pg {
		if v, ok := s.Sole(); ok {
			g[i] = v
		}
	}
	return g
}
