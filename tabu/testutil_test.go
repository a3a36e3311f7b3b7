// Package tabu_test - shared fixtures for the engine tests.
//
// Layout:
//   - tiny4*: the 4-element instance used across packages, small enough to
//     verify every objective by hand.
//   - scriptEval: an Evaluator with function-field overrides. Scenario tests
//     script its answers to pin engine mechanics (tabu cadence, aspiration,
//     restarts) iteration by iteration; construction-only tests lean on the
//     permissive defaults.
package tabu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scqbf/qbf"
	"github.com/katalvlaran/scqbf/tabu"
)

// tiny4 coverage sets: universe {0,1,2,3}, every item covered twice.
func tiny4Sets() [][]int {
	return [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
}

// tiny4 upper-triangular weights; see the qbf package tests for the full
// hand-derived objective table.
func tiny4Tri() [][]float64 {
	return [][]float64{
		{1, 2, 0, -3},
		{4, 1, 0},
		{-2, 5},
		{2},
	}
}

// mustTiny4Eval builds the evaluator over the tiny4 fixture.
func mustTiny4Eval(t *testing.T) *qbf.Evaluator {
	t.Helper()

	inst, err := qbf.NewInstance(tiny4Sets(), tiny4Tri())
	require.NoError(t, err)
	ev, err := qbf.NewEvaluator(inst)
	require.NoError(t, err)

	return ev
}

// mustRandomEval generates a coverable instance and wraps it in an evaluator.
func mustRandomEval(t *testing.T, n int, seed int64) *qbf.Evaluator {
	t.Helper()

	inst, err := qbf.RandomInstance(n, 0.25, -10, 10, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	ev, err := qbf.NewEvaluator(inst)
	require.NoError(t, err)

	return ev
}

// scriptEval satisfies tabu.Evaluator with function-field overrides.
// Nil fields fall back to permissive defaults: objective 0, always feasible,
// zero deltas, and coverage gain 1 for any unselected element.
type scriptEval struct {
	n         int
	objective func(s *qbf.Solution) float64
	feasible  func(s *qbf.Solution) bool
	insDelta  func(e int, s *qbf.Solution) float64
	remDelta  func(e int, s *qbf.Solution) float64
	excDelta  func(in, out int, s *qbf.Solution) float64
	covGain   func(e int, s *qbf.Solution) float64
}

var _ tabu.Evaluator = (*scriptEval)(nil)

func (f *scriptEval) N() int { return f.n }

func (f *scriptEval) Objective(s *qbf.Solution) float64 {
	if f.objective == nil {
		return 0
	}

	return f.objective(s)
}

func (f *scriptEval) IsFeasible(s *qbf.Solution) bool {
	if f.feasible == nil {
		return true
	}

	return f.feasible(s)
}

func (f *scriptEval) IsValid(s *qbf.Solution) bool {
	return f.IsFeasible(s)
}

func (f *scriptEval) InsertionDelta(e int, s *qbf.Solution) float64 {
	if f.insDelta == nil {
		return 0
	}

	return f.insDelta(e, s)
}

func (f *scriptEval) RemovalDelta(e int, s *qbf.Solution) float64 {
	if f.remDelta == nil {
		return 0
	}

	return f.remDelta(e, s)
}

func (f *scriptEval) ExchangeDelta(in, out int, s *qbf.Solution) float64 {
	if f.excDelta == nil {
		return 0
	}

	return f.excDelta(in, out, s)
}

func (f *scriptEval) InsertionCoverageGain(e int, s *qbf.Solution) float64 {
	if f.covGain == nil {
		if s.Contains(e) {
			return 0
		}

		return 1
	}

	return f.covGain(e, s)
}

// hasExactly reports whether s selects exactly the elements of want;
// scenario scripts key their answers on small membership patterns.
func hasExactly(s *qbf.Solution, want ...int) bool {
	if s.Len() != len(want) {
		return false
	}

	var e int
	for _, e = range want {
		if !s.Contains(e) {
			return false
		}
	}

	return true
}
