package sudoku

import (
	"fmt"
)

const (
	// Size is the side length of a standard board.
	Size = 9
	// CellCount is the total number of cells on a board.
	CellCount = Size * Size
	// PeerCount is the number of cells sharing a row, column or block
	// with any given cell, the cell itself excluded.
	PeerCount = 20
)

// Grid is a board of digits in row-major order. A zero cell is blank.
type Grid [CellCount]uint8

func (g *Grid) At(row, col int) uint8 {
	return g[row*Size+col]
}

func (g *Grid) Set(row, col int, value uint8) {
	g[row*Size+col] = value
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// FirstEmpty returns the index of the first blank cell in row-major
// order, scanning rows top to bottom and columns left to right.
func (g *Grid) FirstEmpty() (int, bool) {
	for i, v := range g {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}

// Validate rejects grids with out-of-range cells or a duplicate clue in
// a row, column or block. Blank cells are ignored.
func (g *Grid) Validate() error {
	for i, v := range g {
		if v > Size {
			return fmt.Errorf("%w: cell %d:%d holds %d",
				ErrInvalidPuzzle, i/Size, i%Size, v)
		}
	}
	for i, v := range g {
		if v == 0 {
			continue
		}
		for _, p := range peers[i] {
			if p > i && g[p] == v {
				return fmt.Errorf("%w: duplicate %d at %d:%d and %d:%d",
					ErrInvalidPuzzle, v, i/Size, i%Size, p/Size, p%Size)
			}
		}
	}
	return nil
}

// safe reports whether value may be placed at cell i without clashing
// with a digit already on the grid.
func (g *Grid) safe(i int, value uint8) bool {
	for _, p := range peers[i] {
		if g[p] == value {
			return false
		}
	}
	return true
}

// peers[i] lists the 20 cells sharing a row, column or block with i.
var peers [CellCount][PeerCount]int

func init() {
	for i := range CellCount {
		row, col := i/Size, i%Size
		blockRow, blockCol := 3*(row/3), 3*(col/3)
		n := 0
		add := func(j int) {
			if j == i {
				return
			}
			for _, p := range peers[i][:n] {
				if p == j {
					return
				}
			}
			peers[i][n] = j
			n++
		}
		for k := range Size {
			add(row*Size + k)
			add(k*Size + col)
		}
		for dr := range 3 {
			for dc := range 3 {
				add((blockRow+dr)*Size + (blockCol + dc))
			}
		}
	}
}
