// Package tabu - the randomized constructive heuristic.
//
// Construction is coverage-greedy and uniformly random among admissible
// candidates: starting from an empty selection, each round keeps only the
// candidates whose insertion would newly cover at least one universe item
// and picks one of them uniformly. Candidates that stop contributing
// coverage drop out of the pool permanently, so the pool only ever shrinks
// and construction terminates after at most n picks.
//
// An exhausted pool before feasibility is fatal (ErrConstructionFailed):
// it means no selection at all can cover the universe, i.e. the instance
// itself is malformed.
package tabu

import (
	"math/rand"

	"github.com/katalvlaran/scqbf/qbf"
)

// Construct builds a random feasible solution for ev's instance.
// Exported for callers who want a feasible starting point without running
// the full search (warm starts, test fixtures, baselines).
//
// The rng drives both the initial candidate shuffle and the per-round
// uniform picks; nil falls back to the fixed default stream (seed==0
// policy), keeping the output deterministic.
//
// Errors: ErrNilEvaluator, ErrEmptyInstance, ErrConstructionFailed.
//
// Complexity: O(n² · L) worst case, where L is the final solution size
// (each round filters up to n candidates at O(L) per coverage query).
func Construct(ev Evaluator, rng *rand.Rand) (*qbf.Solution, error) {
	if ev == nil {
		return nil, ErrNilEvaluator
	}

	var n int
	n = ev.N()
	if n <= 0 {
		return nil, ErrEmptyInstance
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var (
		sol  = &qbf.Solution{Elements: make([]int, 0, n)}
		pool = permRange(n, r) // shuffled candidate pool; only ever shrinks
		rcl  []int             // candidates with strictly positive coverage gain
		e    int
	)
	for !ev.IsFeasible(sol) {
		// Re-filter the pool: zero-gain candidates drop out for good, since
		// coverage gains only shrink as the selection grows.
		rcl = rcl[:0]
		for _, e = range pool {
			if ev.InsertionCoverageGain(e, sol) > 0 {
				rcl = append(rcl, e)
			}
		}
		if len(rcl) == 0 {
			return nil, ErrConstructionFailed
		}

		// Uniform pick among admissible candidates.
		e = rcl[r.Intn(len(rcl))]
		sol.Elements = append(sol.Elements, e)

		// The pool collapses to the filtered list; the picked element stays
		// but contributes zero gain from now on and falls out next round.
		pool = append(pool[:0], rcl...)
	}

	return sol, nil
}
