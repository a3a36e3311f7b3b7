// Package qbf - stateless incremental evaluation of SC-QBF solutions.
//
// Numeric policy: Objective is rounded to 1e-9 absolute precision before
// being returned; raw deltas are not (they feed incremental accumulators
// and exact-equality tests on integer-valued matrices).
//
// The Evaluator answers pure queries over (instance, solution). It keeps no
// search state, so one evaluator can serve any number of concurrent searches
// over the same instance.
//
// Delta semantics:
//   - Deltas are exact objective differences, never approximations, and they
//     are NOT additive across moves: an exchange is not insertion+removal,
//     because the incoming and outgoing elements interact through
//     A[in][out]+A[out][in]. ExchangeDelta accounts for that cross term.
//   - Degenerate inputs fold to the cheaper query: inserting a selected
//     element is a no-op (0), exchanging with in==out is a no-op, an
//     exchange whose "in" is already selected degrades to the removal of
//     "out", and one whose "out" is absent degrades to the insertion of "in".
//
// Contracts:
//   - All queries are nil-safe on the solution side (nil reads as empty).
//   - Solutions are trusted to be structurally valid (unique, in-range);
//     run ValidateSolution at trust boundaries. IsValid re-checks structure.
//
// Complexity: see doc.go; all deltas are O(L) for L selected elements.
package qbf

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// roundScale controls objective stabilization precision (1e-9). It removes
// tiny FP drifts across platforms without affecting move comparisons.
const roundScale = 1e9

// Evaluator provides pure objective/feasibility queries for one instance.
type Evaluator struct {
	inst *Instance
}

// NewEvaluator wraps an instance. Errors: ErrNilInstance.
func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	return &Evaluator{inst: inst}, nil
}

// N returns the instance size.
func (ev *Evaluator) N() int {
	return ev.inst.n
}

// Instance returns the wrapped instance (read-only by construction).
func (ev *Evaluator) Instance() *Instance {
	return ev.inst
}

// Objective returns Σ A[i][j] over all selected pairs (i,j), i.e. the full
// quadratic value of the selection. Defined for feasible and infeasible
// selections alike. The result is stabilized to 1e-9 to avoid cross-platform
// floating-point drift in reported values.
//
// Complexity: O(L²) time, O(1) space.
func (ev *Evaluator) Objective(s *Solution) float64 {
	var (
		n   = ev.inst.n
		a   = ev.inst.a
		sum float64 // running objective
		u   int     // first selected element of a pair
		v   int     // second selected element of a pair
	)
	if s == nil {
		return 0
	}
	// Triangular storage makes the double loop self-deduplicating: for each
	// unordered pair exactly one of a[u*n+v], a[v*n+u] can be nonzero.
	for _, u = range s.Elements {
		for _, v = range s.Elements {
			sum += a[u*n+v]
		}
	}

	return round1e9(sum)
}

// IsFeasible reports whether the union of the selected coverage sets spans
// the whole universe {0..n-1}.
//
// Complexity: O(L) bitmap unions.
func (ev *Evaluator) IsFeasible(s *Solution) bool {
	return ev.covered(s).GetCardinality() == uint64(ev.inst.n)
}

// IsValid reports whether s is structurally valid AND feasible. Engines that
// maintain structural invariants themselves can use IsFeasible directly;
// IsValid is the trust-boundary variant.
//
// Complexity: O(L + n).
func (ev *Evaluator) IsValid(s *Solution) bool {
	if err := ValidateSolution(s, ev.inst.n); err != nil {
		return false
	}

	return ev.IsFeasible(s)
}

// InsertionDelta returns the exact objective change from adding element e.
// Selected or out-of-range e contributes 0.
//
// Complexity: O(L).
func (ev *Evaluator) InsertionDelta(e int, s *Solution) float64 {
	if e < 0 || e >= ev.inst.n || s.Contains(e) {
		return 0
	}

	return ev.contribution(e, s)
}

// RemovalDelta returns the exact objective change from dropping element e.
// Unselected or out-of-range e contributes 0.
//
// Complexity: O(L).
func (ev *Evaluator) RemovalDelta(e int, s *Solution) float64 {
	if e < 0 || e >= ev.inst.n || !s.Contains(e) {
		return 0
	}

	return -ev.contribution(e, s)
}

// ExchangeDelta returns the exact objective change from swapping "out"
// (selected) for "in" (unselected) in one move. The cross term
// A[in][out]+A[out][in] is subtracted because contribution(in) counts an
// interaction with "out" that will no longer be selected.
//
// Degenerate cases: in==out → 0; in selected → RemovalDelta(out);
// out unselected → InsertionDelta(in).
//
// Complexity: O(L).
func (ev *Evaluator) ExchangeDelta(in, out int, s *Solution) float64 {
	if in < 0 || in >= ev.inst.n || out < 0 || out >= ev.inst.n {
		return 0
	}
	if in == out {
		return 0
	}
	if s.Contains(in) {
		return ev.RemovalDelta(out, s)
	}
	if !s.Contains(out) {
		return ev.InsertionDelta(in, s)
	}

	return ev.contribution(in, s) - ev.contribution(out, s) - ev.inst.pairWeight(in, out)
}

// InsertionCoverageGain returns |Sₑ \ covered(s)|: how many still-uncovered
// universe items element e would newly cover. Strictly positive gain is the
// admission test of constructive heuristics. Selected or out-of-range e
// gains 0.
//
// Complexity: O(L) unions + one O(|Sₑ|) AndNot.
func (ev *Evaluator) InsertionCoverageGain(e int, s *Solution) float64 {
	if e < 0 || e >= ev.inst.n || s.Contains(e) {
		return 0
	}
	fresh := ev.inst.sets[e].Clone()
	fresh.AndNot(ev.covered(s))

	return float64(fresh.GetCardinality())
}

// contribution returns A[e][e] plus e's interaction with every OTHER
// selected element. For selected e this equals e's share of the objective;
// for unselected e it equals the insertion gain.
//
// Complexity: O(L).
func (ev *Evaluator) contribution(e int, s *Solution) float64 {
	var (
		sum = ev.inst.a[e*ev.inst.n+e] // diagonal term
		j   int                        // other selected element
	)
	if s == nil {
		return sum
	}
	for _, j = range s.Elements {
		if j == e {
			continue
		}
		sum += ev.inst.pairWeight(e, j)
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// covered returns the union of the selected coverage sets as a fresh bitmap.
//
// Complexity: O(L) unions.
func (ev *Evaluator) covered(s *Solution) *roaring.Bitmap {
	union := roaring.New()
	if s == nil {
		return union
	}

	var e int
	for _, e = range s.Elements {
		union.Or(ev.inst.sets[e])
	}

	return union
}
