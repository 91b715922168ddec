package sudoku

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads a grid from its textual form: 81 cells in row-major
// order, `0` or `.` for a blank. Whitespace and the `|`, `-`, `+`
// characters used by String as block separators are ignored, so both
// the compact 81-character form and the rendered form round-trip.
func Parse(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		switch {
		case r == '.' || (r >= '0' && r <= '9'):
			if n == CellCount {
				return Grid{}, fmt.Errorf("grid text has more than %d cells", CellCount)
			}
			if r != '.' {
				g[n] = uint8(r - '0')
			}
			n++
		case unicode.IsSpace(r) || r == '|' || r == '-' || r == '+':
			// separator
		default:
			return Grid{}, fmt.Errorf("unexpected character %q in grid text", r)
		}
	}
	if n != CellCount {
		return Grid{}, fmt.Errorf("grid text has %d cells, want %d", n, CellCount)
	}
	return g, nil
}

// Compact returns the 81-character single-line form.
func (g Grid) Compact() string {
	var b strings.Builder
	for _, v := range g {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// String renders the grid with separators grouping the 3x3 blocks.
func (g Grid) String() string {
	var b strings.Builder
	for row := range Size {
		for col := range Size {
			fmt.Fprintf(&b, "%d ", g.At(row, col))
			if col%3 == 2 && col != Size-1 {
				b.WriteString("| ")
			}
		}
		b.WriteString("\n")
		if row%3 == 2 && row != Size-1 {
			b.WriteString("------+-------+------\n")
		}
	}
	return b.String()
}
