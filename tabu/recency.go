// Package tabu - recency memory for intensification by restart.
//
// One counter per element tracks persistence across incumbents: every time
// a new best solution is adopted, counters of its members grow by one and
// counters of absent elements reset to zero. A high count therefore means
// "this element has been in every recent best", which is exactly what a
// restart wants to protect.
package tabu

import (
	"sort"

	"github.com/katalvlaran/scqbf/qbf"
)

// recency holds the per-element persistence counters.
type recency struct {
	counts []int
}

// newRecency returns zeroed counters for n elements.
func newRecency(n int) *recency {
	return &recency{counts: make([]int, n)}
}

// observeBest folds a newly adopted incumbent into the counters: members
// increment, everyone else resets. Called once per strict improvement.
//
// Complexity: O(n).
func (r *recency) observeBest(best *qbf.Solution) {
	member := make([]bool, len(r.counts))

	var e int
	for _, e = range best.Elements {
		member[e] = true
	}
	for e = 0; e < len(r.counts); e++ {
		if member[e] {
			r.counts[e]++
		} else {
			r.counts[e] = 0
		}
	}
}

// attractive returns up to maxFixed elements ordered by descending counter,
// ties broken by ascending index. Elements with zero counters never qualify.
// The deterministic order makes restart behavior reproducible under a seed.
//
// Complexity: O(n log n).
func (r *recency) attractive(maxFixed int) []int {
	if maxFixed <= 0 {
		return nil
	}

	cand := make([]int, 0, len(r.counts))

	var e int
	for e = 0; e < len(r.counts); e++ {
		if r.counts[e] > 0 {
			cand = append(cand, e)
		}
	}
	sort.Slice(cand, func(i, j int) bool {
		if r.counts[cand[i]] != r.counts[cand[j]] {
			return r.counts[cand[i]] > r.counts[cand[j]]
		}

		return cand[i] < cand[j]
	})
	if len(cand) > maxFixed {
		cand = cand[:maxFixed]
	}

	return cand
}
