// Package qbf_test exercises the instance parser: the interchange grammar,
// whitespace tolerance, 1-based to 0-based member conversion, and the
// truncation/token sentinels.
package qbf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scqbf/qbf"
)

// tiny4Text is the reference instance in the on-disk format (1-based members).
const tiny4Text = `4
2 2 2 2
1 2
2 3
3 4
1 4
1 2 0 -3
4 1 0
-2 5
2
`

// -----------------------------------------------------------------------------
// 1) Grammar - the reference text parses into the reference instance.
// -----------------------------------------------------------------------------

func TestParseInstance_ReferenceText(t *testing.T) {
	inst, err := qbf.ParseInstance(strings.NewReader(tiny4Text))
	require.NoError(t, err)
	require.Equal(t, tiny4N, inst.N())

	// Spot-check the triangle.
	at := func(i, j int) float64 {
		v, aErr := inst.A(i, j)
		require.NoError(t, aErr)

		return v
	}
	assert.Equal(t, 1.0, at(0, 0))
	assert.Equal(t, -3.0, at(0, 3))
	assert.Equal(t, 5.0, at(2, 3))
	assert.Zero(t, at(2, 1)) // below diagonal

	// Members arrive 0-based: file "1 2" becomes S0={0,1}.
	s0, err := inst.CoverageSet(0)
	require.NoError(t, err)
	assert.True(t, s0.Contains(0))
	assert.True(t, s0.Contains(1))
	assert.False(t, s0.Contains(2))

	// The parsed instance behaves exactly like the hand-built one.
	evParsed := mustEvaluator(t, inst)
	evBuilt := mustEvaluator(t, mustTiny4(t))
	probe := []*qbf.Solution{sol(0), sol(0, 1), sol(1, 2, 3), sol(0, 1, 2, 3)}
	for _, s := range probe {
		assert.Equal(t, evBuilt.Objective(s), evParsed.Objective(s))
		assert.Equal(t, evBuilt.IsFeasible(s), evParsed.IsFeasible(s))
	}
}

// Line breaks carry no meaning: the same token stream on one line parses
// identically.
func TestParseInstance_WhitespaceInsensitive(t *testing.T) {
	flat := strings.Join(strings.Fields(tiny4Text), " ")
	inst, err := qbf.ParseInstance(strings.NewReader(flat))
	require.NoError(t, err)
	assert.Equal(t, tiny4N, inst.N())
	assert.Equal(t, 10.0, mustEvaluator(t, inst).Objective(sol(0, 1, 2, 3)))
}

// -----------------------------------------------------------------------------
// 2) Sentinels - truncation, bad tokens, bad shapes.
// -----------------------------------------------------------------------------

func TestParseInstance_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty input", "", qbf.ErrTruncatedInput},
		{"sizes cut short", "4\n2 2", qbf.ErrTruncatedInput},
		{"members cut short", "4\n2 2 2 2\n1 2\n2 3\n3", qbf.ErrTruncatedInput},
		{"matrix cut short", "2\n1 1\n1\n2\n1 2\n", qbf.ErrTruncatedInput},
		{"non-numeric size", "x", qbf.ErrBadToken},
		{"non-numeric member", "2\n1 1\n1\nq\n1 2\n3\n4", qbf.ErrBadToken},
		{"non-numeric weight", "2\n1 1\n1\n2\n1 z\n3", qbf.ErrBadToken},
		{"zero size", "0", qbf.ErrNonPositiveSize},
		{"negative set size", "2\n-1 1\n1\n1 2\n3", qbf.ErrShapeMismatch},
		{"member out of range", "2\n1 1\n3\n2\n1 2\n3", qbf.ErrElementOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := qbf.ParseInstance(strings.NewReader(tc.text))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Bad-token errors carry the offending token for diagnostics while still
// matching the sentinel.
func TestParseInstance_BadTokenContext(t *testing.T) {
	_, err := qbf.ParseInstance(strings.NewReader("2\n1 1\n1\n2\n1 oops\n3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, qbf.ErrBadToken)
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestReadInstanceFile_MissingPath(t *testing.T) {
	_, err := qbf.ReadInstanceFile(t.TempDir() + "/absent.txt")
	assert.Error(t, err)
}
