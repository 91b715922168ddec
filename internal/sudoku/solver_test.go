package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	// a notoriously hard puzzle: elimination alone resolves nothing
	// useful and the search has to guess
	hard         = "800000000003600000070090200050007000000045700000100030001000068008500010090000400"
	hardSolution = "812753649943682175675491283154237896369845721287169534521974368438526917796318452"

	// hard with a wrong (but clue-compatible) 2 at row 0 col 1; since
	// hard has a unique solution this cannot be completed, and one
	// elimination pass leaves no contradiction to detect up front
	unsolvable = "820000000003600000070090200050007000000045700000100030001000068008500010090000400"
)

// assertSolved checks the validity property: each row, column and block
// holds every digit exactly once.
func assertSolved(t *testing.T, g Grid) {
	t.Helper()
	groups := [][]int{}
	for k := range Size {
		row, col, block := []int{}, []int{}, []int{}
		for j := range Size {
			row = append(row, k*Size+j)
			col = append(col, j*Size+k)
			block = append(block, (3*(k/3)+j/3)*Size+3*(k%3)+j%3)
		}
		groups = append(groups, row, col, block)
	}
	for _, cells := range groups {
		var mask CellSet
		for _, i := range cells {
			mask |= SetOf(g[i])
		}
		assert.Equal(t, FullSet, mask, "group %v incomplete: %s", cells, g.Compact())
	}
}

func TestBacktrackingSolvesClassic(t *testing.T) {
	out, err := BacktrackingSolver{}.Solve(context.Background(), mustParse(t, classic))
	require.NoError(t, err)
	assert.Equal(t, classicSolution, out.Compact())
	assertSolved(t, out)
}

func TestFixpointSolvesClassic(t *testing.T) {
	// the classic puzzle happens to fall to pure elimination
	out, err := FixpointSolver{}.Solve(context.Background(), mustParse(t, classic))
	require.NoError(t, err)
	assert.Equal(t, classicSolution, out.Compact())
}

func TestSolvedInputIsReturnedUnchanged(t *testing.T) {
	solved := mustParse(t, classicSolution)
	for _, a := range []Algorithm{Backtracking, Fixpoint} {
		t.Run(a.String(), func(t *testing.T) {
			s, err := New(a)
			require.NoError(t, err)
			out, err := s.Solve(context.Background(), solved)
			require.NoError(t, err)
			assert.Equal(t, solved, out)
		})
	}
}

func TestBacktrackingIsDeterministic(t *testing.T) {
	for _, puzzle := range []string{classic, hard} {
		first, err := BacktrackingSolver{}.Solve(context.Background(), mustParse(t, puzzle))
		require.NoError(t, err)
		second, err := BacktrackingSolver{}.Solve(context.Background(), mustParse(t, puzzle))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestFixpointReportsNeedsSearch(t *testing.T) {
	puzzle := mustParse(t, hard)

	partial, err := FixpointSolver{}.Solve(context.Background(), puzzle)
	assert.ErrorIs(t, err, ErrNeedsSearch)
	for i, v := range puzzle {
		if v != 0 {
			assert.Equal(t, v, partial[i], "clue %d lost from partial output", i)
		}
	}

	out, err := BacktrackingSolver{}.Solve(context.Background(), puzzle)
	require.NoError(t, err)
	assert.Equal(t, hardSolution, out.Compact())
	assertSolved(t, out)
}

func TestBacktrackingExhaustionReportsNoSolution(t *testing.T) {
	out, err := BacktrackingSolver{}.Solve(context.Background(), mustParse(t, unsolvable))
	assert.ErrorIs(t, err, ErrNoSolution)
	_, open := out.FirstEmpty()
	assert.True(t, open, "failed solve must leave open cells blank")
}

func TestEmptyGridIsSolvable(t *testing.T) {
	out, err := BacktrackingSolver{}.Solve(context.Background(), Grid{})
	require.NoError(t, err)
	assert.True(t, out.Full())
	assertSolved(t, out)
}

func TestInvalidPuzzleIsRejected(t *testing.T) {
	// duplicate 5 in row 0: 5 3 0 0 7 0 0 0 5
	dup := mustParse(t, classic)
	dup.Set(0, 8, 5)

	for _, a := range []Algorithm{Backtracking, Fixpoint} {
		t.Run(a.String(), func(t *testing.T) {
			s, err := New(a)
			require.NoError(t, err)
			out, err := s.Solve(context.Background(), dup)
			assert.ErrorIs(t, err, ErrInvalidPuzzle)
			assert.Equal(t, dup, out, "input must be rejected before solving begins")
		})
	}
}

func TestContradictionIsReported(t *testing.T) {
	puzzle := mustParse(t, "123456780"+
		"000000009"+
		"000000000000000000000000000000000000000000000000000000000000000")

	for _, a := range []Algorithm{Backtracking, Fixpoint} {
		t.Run(a.String(), func(t *testing.T) {
			s, err := New(a)
			require.NoError(t, err)
			_, err = s.Solve(context.Background(), puzzle)
			assert.ErrorIs(t, err, ErrContradiction)
		})
	}
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, a := range []Algorithm{Backtracking, Fixpoint} {
		t.Run(a.String(), func(t *testing.T) {
			s, err := New(a)
			require.NoError(t, err)
			_, err = s.Solve(ctx, mustParse(t, hard))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
		ok    bool
	}{
		{"backtracking", Backtracking, true},
		{"Fixpoint", Fixpoint, true},
		{"", Backtracking, true},
		{"dlx", 0, false},
	}
	for _, test := range tests {
		a, err := ParseAlgorithm(test.input)
		if test.ok {
			assert.NoError(t, err)
			assert.Equal(t, test.want, a)
		} else {
			assert.Error(t, err)
		}
	}
}
