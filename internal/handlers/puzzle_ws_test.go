package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestStepSessionEliminateAndReset(t *testing.T) {
	puzzle, err := sudoku.Parse(classic)
	require.NoError(t, err)
	session := newStepSession(puzzle)
	ctx := context.Background()

	state, err := session.execute(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Passes)
	require.NotNil(t, state.Changed)
	assert.True(t, *state.Changed)
	assert.Empty(t, state.Error)

	state, err = session.execute(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, 0, state.Passes)
	assert.Equal(t, classic, state.Grid)
}

func TestStepSessionBacktrack(t *testing.T) {
	puzzle, err := sudoku.Parse(classic)
	require.NoError(t, err)
	session := newStepSession(puzzle)

	state, err := session.execute(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, state.Resolved)
	assert.Empty(t, state.Error)
}

func TestStepSessionUnknownCommand(t *testing.T) {
	puzzle, err := sudoku.Parse(classic)
	require.NoError(t, err)
	session := newStepSession(puzzle)

	_, err = session.execute(context.Background(), "x")
	assert.Error(t, err)
}
