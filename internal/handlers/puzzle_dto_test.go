package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolveOptions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  SolveOptionsDTO
		ok    bool
	}{
		{"defaults", "", SolveOptionsDTO{}, true},
		{"algorithm", "algorithm=fixpoint", SolveOptionsDTO{Algorithm: "fixpoint"}, true},
		{"timeout", "algorithm=backtracking&timeout_ms=500",
			SolveOptionsDTO{Algorithm: "backtracking", TimeoutMs: 500}, true},
		{"unknown keys ignored", "algorithm=fixpoint&foo=bar",
			SolveOptionsDTO{Algorithm: "fixpoint"}, true},
		{"negative timeout", "timeout_ms=-1", SolveOptionsDTO{}, false},
		{"bad timeout", "timeout_ms=soon", SolveOptionsDTO{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			values, err := url.ParseQuery(test.query)
			require.NoError(t, err)
			dto, err := ParseSolveOptions(values)
			if !test.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, dto)
		})
	}
}

func TestParseListPuzzlesDTO(t *testing.T) {
	values, err := url.ParseQuery("username=ann&solved=true")
	require.NoError(t, err)

	dto, err := ParseListPuzzlesDTO(values)
	require.NoError(t, err)
	require.NotNil(t, dto.Username)
	assert.Equal(t, "ann", *dto.Username)
	require.NotNil(t, dto.Solved)
	assert.True(t, *dto.Solved)
	assert.Nil(t, dto.Algorithm)
}
