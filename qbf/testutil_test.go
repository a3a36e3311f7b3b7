// Package qbf_test provides lightweight helpers shared across *_test.go files
// in this package: one small hand-computed instance with known objectives,
// plus strict constructors that fail the test on error.
package qbf_test

import (
	"testing"

	"github.com/katalvlaran/scqbf/qbf"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// tiny4N is the size of the hand-computed reference instance below.
	tiny4N = 4
)

// -----------------------------------------------------------------------------
// tiny4: a 4-element instance with hand-verified objectives
// -----------------------------------------------------------------------------
//
// Upper-triangular objective rows (row i carries A[i][i..3]):
//
//	A[0][0..3] = [ 1  2  0 -3]
//	A[1][1..3] = [ 4  1  0]
//	A[2][2..3] = [-2  5]
//	A[3][3]    = [ 2]
//
// Coverage sets (0-based): S0={0,1} S1={1,2} S2={2,3} S3={0,3}.
//
// Reference objectives:
//
//	{0}→1  {0,1}→7  {0,2}→-1  {1,3}→6  {0,1,2}→6  {1,2,3}→10  {0,1,2,3}→10

// tiny4Sets returns fresh coverage-set slices for the reference instance.
func tiny4Sets() [][]int {
	return [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
}

// tiny4Tri returns fresh triangular objective rows for the reference instance.
func tiny4Tri() [][]float64 {
	return [][]float64{
		{1, 2, 0, -3},
		{4, 1, 0},
		{-2, 5},
		{2},
	}
}

// mustInstance builds an instance or fails the test.
func mustInstance(t *testing.T, sets [][]int, tri [][]float64) *qbf.Instance {
	t.Helper()
	inst, err := qbf.NewInstance(sets, tri)
	if err != nil {
		t.Fatalf("NewInstance failed: %v", err)
	}

	return inst
}

// mustTiny4 builds the reference instance or fails the test.
func mustTiny4(t *testing.T) *qbf.Instance {
	t.Helper()

	return mustInstance(t, tiny4Sets(), tiny4Tri())
}

// mustEvaluator wraps an instance or fails the test.
func mustEvaluator(t *testing.T, inst *qbf.Instance) *qbf.Evaluator {
	t.Helper()
	ev, err := qbf.NewEvaluator(inst)
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	return ev
}

// sol is shorthand for a solution literal.
func sol(elems ...int) *qbf.Solution {
	return &qbf.Solution{Elements: elems}
}
