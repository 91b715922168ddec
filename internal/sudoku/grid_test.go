package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

func TestParseCompactRoundTrip(t *testing.T) {
	g := mustParse(t, classic)
	assert.Equal(t, classic, g.Compact())
	assert.Equal(t, uint8(5), g.At(0, 0))
	assert.Equal(t, uint8(9), g.At(8, 8))
}

func TestParseAcceptsRenderedForm(t *testing.T) {
	g := mustParse(t, classic)
	again, err := Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, again)
}

func TestParseAcceptsDotsAndLines(t *testing.T) {
	lines := []string{
		"53..7....", "6..195...", ".98....6.",
		"8...6...3", "4..8.3..1", "7...2...6",
		".6....28.", "...419..5", "....8..79",
	}
	g, err := Parse(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, classic, g.Compact())
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", classic[:80]},
		{"too long", classic + "1"},
		{"bad character", "x" + classic[1:]},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.text)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	g := mustParse(t, classic)
	assert.NoError(t, g.Validate())

	// duplicate 5 in row 0
	dup := g
	dup.Set(0, 8, 5)
	assert.ErrorIs(t, dup.Validate(), ErrInvalidPuzzle)

	// out-of-range cell
	bad := g
	bad[40] = 12
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPuzzle)
}

func TestPeersTable(t *testing.T) {
	for i := range CellCount {
		seen := map[int]bool{i: true}
		for _, p := range peers[i] {
			assert.False(t, seen[p], "cell %d: duplicate peer %d", i, p)
			seen[p] = true
			sameRow := p/Size == i/Size
			sameCol := p%Size == i%Size
			sameBlock := p/Size/3 == i/Size/3 && p%Size/3 == i%Size/3
			assert.True(t, sameRow || sameCol || sameBlock,
				"cell %d: %d is not a peer", i, p)
		}
	}
}
