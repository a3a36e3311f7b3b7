// Package tabu - search configuration.
//
// One flat Options struct drives the whole engine; DefaultOptions returns a
// conservative, reproducible baseline. Zero values of the three termination
// knobs mean "unconfigured": with all three at zero the search never stops
// on its own, which is a legitimate (if sharp-edged) configuration.
package tabu

import (
	"log/slog"
	"time"
)

// Options configures one Solve run. Validate-on-entry: Solve rejects the
// first violation with a sentinel before any search work happens.
type Options struct {
	// Tenure is the number of iterations a moved element stays tabu. The
	// short-term memory holds exactly 2×Tenure slots (two per iteration:
	// the outgoing side first, then the incoming side). Must be positive.
	Tenure int

	// Strategy picks the neighborhood scan: FirstImproving (default) or
	// BestImproving.
	Strategy Strategy

	// MaxIter stops the search when the iteration counter reaches it.
	// 0 = unconfigured.
	MaxIter int

	// TimeLimit stops the search when elapsed wall-clock time reaches it.
	// The clock starts when the move loop begins, so construction time is
	// not charged. Checked once per iteration (soft deadline).
	// 0 = unconfigured.
	TimeLimit time.Duration

	// Patience stops the search after this many consecutive non-improving
	// iterations. An iteration is non-improving when the working objective
	// does not strictly exceed the incumbent. 0 = unconfigured.
	Patience int

	// Probabilistic enables candidate-list downsampling: each iteration the
	// insertion candidate list shrinks to max(1, ⌊|CL|·ProbabilisticParam⌋)
	// uniformly sampled elements, and exchanges draw their incoming side
	// from the same sample.
	Probabilistic bool

	// ProbabilisticParam is the sampling fraction, strictly in (0,1).
	// Ignored unless Probabilistic is set.
	ProbabilisticParam float64

	// Intensification enables intensification by restart: recency counters
	// track how long each element has stayed in consecutive incumbents, and
	// every RestartPatience-th stagnant iteration the search restarts from
	// the incumbent with the most persistent elements fixed in place.
	Intensification bool

	// RestartPatience is the stagnation period between restarts. Must be
	// positive when Intensification is set.
	RestartPatience int

	// MaxFixedElements caps how many attractive elements a restart fixes.
	// 0 fixes nothing (restarts still reset the working solution).
	MaxFixedElements int

	// Seed drives the single deterministic RNG stream of the run.
	// Policy: 0 selects a fixed default seed, so runs are reproducible
	// unless explicitly varied.
	Seed int64

	// CollectHistory records one HistoryPoint per move iteration into
	// Result.History. Off by default: long runs produce long histories.
	CollectHistory bool

	// OnIteration, when non-nil, observes every move iteration. The hook
	// must not retain the point past the call; it runs on the search
	// goroutine and its cost adds directly to iteration time.
	OnIteration func(HistoryPoint)

	// Logger, when non-nil, emits debug-level per-iteration and restart
	// lines. The engine stays silent without it.
	Logger *slog.Logger
}

// DefaultOptions returns the reproducible baseline: first-improving scan,
// tenure 20, a 1000-iteration cap, and everything optional switched off.
func DefaultOptions() Options {
	return Options{
		Tenure:             20,
		Strategy:           FirstImproving,
		MaxIter:            1000,
		TimeLimit:          0,
		Patience:           0,
		Probabilistic:      false,
		ProbabilisticParam: 0.5,
		Intensification:    false,
		RestartPatience:    100,
		MaxFixedElements:   2,
		Seed:               0,
		CollectHistory:     false,
	}
}
