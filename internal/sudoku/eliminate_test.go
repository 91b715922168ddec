package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminateResolvesLastCellInRow(t *testing.T) {
	// row 0 holds every digit but 2; its column and block peers carry
	// no clues, so one pass must leave {2} as the only candidate
	g := mustParse(t, "534678910"+
		"000000000000000000000000000000000000"+
		"000000000000000000000000000000000000")
	pg := NewPossibilityGrid(&g)

	assert.True(t, pg.Eliminate())
	v, ok := pg[8].Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(2), v)

	out := pg.Extract()
	assert.Equal(t, uint8(2), out.At(0, 8))
}

func TestEliminateIsIdempotentWithoutNewResolutions(t *testing.T) {
	g := mustParse(t, classic)
	pg := NewPossibilityGrid(&g)
	for pg.Eliminate() {
	}
	snapshot := *pg
	assert.False(t, pg.Eliminate())
	assert.Equal(t, snapshot, *pg)
}

func TestEliminateNeverGrowsASet(t *testing.T) {
	g := mustParse(t, classic)
	pg := NewPossibilityGrid(&g)
	before := *pg
	pg.Eliminate()
	for i := range pg {
		assert.LessOrEqual(t, pg[i].Count(), before[i].Count())
		assert.Equal(t, CellSet(0), pg[i]&^before[i], "cell %d gained candidates", i)
	}
}

func TestCheckFlagsForcedDuplicates(t *testing.T) {
	// (0,8) is forced to 9 by its row, clashing with the 9 clue just
	// below it; the clues themselves contain no duplicate
	g := mustParse(t, "123456780"+
		"000000009"+
		"000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, g.Validate())

	pg := NewPossibilityGrid(&g)
	pg.Eliminate()
	assert.ErrorIs(t, pg.Check(), ErrContradiction)
}

func TestCheckFlagsEmptySet(t *testing.T) {
	g := mustParse(t, classic)
	pg := NewPossibilityGrid(&g)
	pg[2] = 0
	assert.ErrorIs(t, pg.Check(), ErrContradiction)
}
