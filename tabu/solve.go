// Package tabu - the search engine and its single entry point.
//
// The run is a three-state machine: construct a feasible start, iterate
// moves until a termination rule fires, report. Each iteration, in order:
//
//  1. advance the iteration counter and check termination
//     (max-iter, then time-limit, then patience; first hit wins);
//  2. optionally restart from the incumbent (intensification);
//  3. select one move under the configured strategy;
//  4. apply it copy-on-write and feed the tabu list (out side, then in);
//  5. adopt a strictly better working solution as the new incumbent,
//     updating recency memory and releasing restart-fixed elements;
//  6. observe (history, hook, debug log).
//
// Determinism: one RNG stream per run, derived from Options.Seed; identical
// seed and inputs reproduce the trajectory exactly.
//
// Design:
//   - Engine state lives in an unexported struct; Solve is the only door.
//   - The engine consumes the Evaluator contract alone: every feasibility
//     and objective question goes through the interface, never through
//     instance internals.
//   - No goroutines, no shared state, no context plumbing: a run is a
//     plain synchronous call. Run concurrent searches by calling Solve
//     from separate goroutines with separate Options.
package tabu

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/scqbf/qbf"
)

// engine carries the mutable state of one run.
type engine struct {
	ev   Evaluator
	opts Options
	rng  *rand.Rand
	n    int

	tl        *tabuList
	rec       *recency // nil unless intensification is on
	fixed     []bool   // restart-protected elements
	inCurrent []bool   // membership mirror of current

	current *qbf.Solution
	curObj  float64 // incremental objective of current
	best    *qbf.Solution
	bestObj float64

	iter        int
	noImprove   int
	start       time.Time // Duration anchor, set on entry
	searchStart time.Time // TimeLimit anchor, set when the move loop begins
	history     []HistoryPoint
}

// Solve runs Tabu Search against ev under opts and returns the incumbent.
//
// The returned solution is feasible whenever the error is nil; the working
// solution may pass through infeasible-looking probes internally, but every
// applied move preserves coverage by construction.
//
// Termination: MaxIter, TimeLimit, and Patience each stop the run when
// configured (non-zero); with all three at zero the search never stops on
// its own. The iteration counter is advanced before the checks, so
// MaxIter=K reports exactly K iterations. TimeLimit measures the move loop
// alone; construction is not charged against it, though Result.Duration
// still covers the whole call.
//
// Errors: ErrNilEvaluator, ErrEmptyInstance, the validate.go sentinels for
// malformed Options, and ErrConstructionFailed when the instance cannot be
// covered. Infeasible neighbor moves are never errors; they are simply not
// candidates.
func Solve(ev Evaluator, opts Options) (Result, error) {
	// Stage 1: fail-fast validation, cheapest first.
	if ev == nil {
		return Result{}, ErrNilEvaluator
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var n int
	n = ev.N()
	if n <= 0 {
		return Result{}, ErrEmptyInstance
	}

	// Stage 2: assemble the engine.
	en := &engine{
		ev:        ev,
		opts:      opts,
		rng:       rngFromSeed(opts.Seed),
		n:         n,
		tl:        newTabuList(opts.Tenure),
		fixed:     make([]bool, n),
		inCurrent: make([]bool, n),
	}
	if opts.Intensification {
		en.rec = newRecency(n)
	}

	return en.run()
}

// run executes construction plus the iteration loop.
func (en *engine) run() (Result, error) {
	en.start = time.Now()

	// Constructing: a feasible start or a fatal instance defect.
	cur, err := Construct(en.ev, en.rng)
	if err != nil {
		return Result{}, err
	}
	en.adoptStart(cur)

	// Searching: one move per iteration until a rule fires. The time-limit
	// clock starts here; construction is not charged against it.
	en.searchStart = time.Now()
	var (
		reason StopReason
		stop   bool
		mv     move
		ok     bool
	)
	for {
		en.iter++
		if reason, stop = en.checkStop(); stop {
			break
		}
		en.maybeRestart()

		mv, ok = en.selectMove()
		en.applyMove(mv, ok)
		en.updateBest()
		en.observe()
	}

	// Terminated: report the incumbent with an authoritative re-evaluation
	// (the incremental accumulator is exact up to FP noise; the final
	// number should not depend on the move history).
	return Result{
		Best:       en.best,
		Objective:  en.ev.Objective(en.best),
		Iterations: en.iter,
		Duration:   time.Since(en.start),
		StopReason: reason,
		History:    en.history,
	}, nil
}

// adoptStart installs the constructed solution as both working and
// incumbent state.
func (en *engine) adoptStart(cur *qbf.Solution) {
	en.current = cur
	en.curObj = en.ev.Objective(cur)
	en.best = cur.Clone()
	en.bestObj = en.curObj

	var e int
	for _, e = range cur.Elements {
		en.inCurrent[e] = true
	}
	// The constructed solution is the first incumbent; recency memory
	// starts counting from it.
	if en.rec != nil {
		en.rec.observeBest(en.best)
	}
}

// checkStop evaluates the termination rules in priority order.
// Zero-valued knobs are unconfigured and never fire.
func (en *engine) checkStop() (StopReason, bool) {
	if en.opts.MaxIter > 0 && en.iter >= en.opts.MaxIter {
		return StopMaxIter, true
	}
	if en.opts.TimeLimit > 0 && time.Since(en.searchStart) >= en.opts.TimeLimit {
		return StopTimeLimit, true
	}
	if en.opts.Patience > 0 && en.noImprove >= en.opts.Patience {
		return StopPatience, true
	}

	return "", false
}

// maybeRestart resets the working solution to the incumbent and fixes the
// most persistent elements, on every RestartPatience-th stagnant iteration.
func (en *engine) maybeRestart() {
	if !en.opts.Intensification {
		return
	}
	if (en.noImprove+1)%en.opts.RestartPatience != 0 {
		return
	}

	en.current = en.best.Clone()
	en.curObj = en.bestObj

	var e int
	for e = 0; e < en.n; e++ {
		en.inCurrent[e] = false
		en.fixed[e] = false
	}
	for _, e = range en.current.Elements {
		en.inCurrent[e] = true
	}

	// Attractive elements all live in the incumbent (absent elements reset
	// their counters), so fixing them never contradicts the new current.
	attr := en.rec.attractive(en.opts.MaxFixedElements)
	for _, e = range attr {
		en.fixed[e] = true
	}
	if en.opts.Logger != nil {
		en.opts.Logger.Debug("tabu restart",
			"iter", en.iter, "best", en.bestObj, "fixed", len(attr))
	}
}

// applyMove feeds the tabu list and mutates the working solution. A skipped
// iteration (no admissible move) still pushes two placeholders: the list
// must age every iteration or a full blockade would never expire.
func (en *engine) applyMove(mv move, ok bool) {
	if !ok {
		en.tl.pushPlaceholder()
		en.tl.pushPlaceholder()

		return
	}

	// Outgoing side first, then incoming; the fixed cadence is what makes
	// tenure count iterations.
	if mv.hasOut {
		en.tl.pushElem(mv.out)
	} else {
		en.tl.pushPlaceholder()
	}
	if mv.hasIn {
		en.tl.pushElem(mv.in)
	} else {
		en.tl.pushPlaceholder()
	}

	switch {
	case mv.hasIn && mv.hasOut:
		en.current = en.current.WithExchange(mv.in, mv.out)
		en.inCurrent[mv.out] = false
		en.inCurrent[mv.in] = true
	case mv.hasIn:
		en.current = en.current.WithInsertion(mv.in)
		en.inCurrent[mv.in] = true
	default:
		en.current = en.current.WithRemoval(mv.out)
		en.inCurrent[mv.out] = false
	}
	en.curObj += mv.delta
}

// updateBest adopts a strictly better working solution as the incumbent,
// resets stagnation, folds the incumbent into recency memory, and releases
// restart-fixed elements. Equal objectives count as stagnation.
func (en *engine) updateBest() {
	if en.curObj > en.bestObj {
		en.best = en.current.Clone()
		en.bestObj = en.curObj
		en.noImprove = 0
		if en.rec != nil {
			en.rec.observeBest(en.best)
		}

		var e int
		for e = 0; e < en.n; e++ {
			en.fixed[e] = false
		}

		return
	}
	en.noImprove++
}

// observe emits the per-iteration point to history, hook, and logger.
func (en *engine) observe() {
	if !en.opts.CollectHistory && en.opts.OnIteration == nil && en.opts.Logger == nil {
		return
	}

	pt := HistoryPoint{Iteration: en.iter, Current: en.curObj, Best: en.bestObj}
	if en.opts.CollectHistory {
		en.history = append(en.history, pt)
	}
	if en.opts.OnIteration != nil {
		en.opts.OnIteration(pt)
	}
	if en.opts.Logger != nil {
		en.opts.Logger.Debug("tabu iteration",
			"iter", pt.Iteration, "current", pt.Current, "best", pt.Best)
	}
}
