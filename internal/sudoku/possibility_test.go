package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellSet(t *testing.T) {
	assert.Equal(t, 9, FullSet.Count())
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, FullSet.Digits())

	s := SetOf(4)
	v, ok := s.Sole()
	assert.True(t, ok)
	assert.Equal(t, uint8(4), v)

	s = FullSet.Without(3).Without(7)
	assert.Equal(t, 7, s.Count())
	assert.False(t, s.Has(3))
	assert.False(t, s.Has(7))
	assert.True(t, s.Has(9))

	_, ok = s.Sole()
	assert.False(t, ok)
	_, ok = CellSet(0).Sole()
	assert.False(t, ok)
}

func TestNewPossibilityGrid(t *testing.T) {
	g := mustParse(t, classic)
	pg := NewPossibilityGrid(&g)
	for i, v := range g {
		if v == 0 {
			assert.Equal(t, FullSet, pg[i])
		} else {
			assert.Equal(t, SetOf(v), pg[i])
		}
	}
	assert.False(t, pg.Resolved())
	assert.NoError(t, pg.Check())
}

func TestExtractLeavesOpenCellsBlank(t *testing.T) {
	g := mustParse(t, classic)
	pg := NewPossibilityGrid(&g)
	assert.Equal(t, g, pg.Extract())

	pg.Eliminate()
	partial := pg.Extract()
	for i, v := range g {
		if v != 0 {
			assert.Equal(t, v, partial[i])
		}
	}
}
