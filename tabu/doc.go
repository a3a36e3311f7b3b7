// Package tabu provides a Tabu Search engine for set-cover quadratic binary
// maximization, searching over feasible selections with short-term memory,
// aspiration, and optional sampling and restart mechanics.
//
// What
//
//   - Construct a feasible start greedily-randomized (coverage-driven RCL),
//     then iterate one move per iteration over three families:
//   - insertion: add one unselected element;
//   - removal:   drop one selected element, keeping coverage;
//   - exchange:  swap one in for one out, with the exact cross term.
//   - Moves touching recently-moved elements are tabu for Tenure iterations
//     unless they aspirate (would strictly beat the incumbent).
//   - Two scan strategies: FirstImproving (shuffled, takes the first
//     improving admissible move, degrades to a best sweep when none) and
//     BestImproving (full scan, applies the best admissible move even when
//     it worsens).
//   - Optional probabilistic candidate sampling (Probabilistic +
//     ProbabilisticParam) and intensification by restart (Intensification +
//     RestartPatience + MaxFixedElements).
//   - Returns a Result with the incumbent, its objective, the iteration
//     count, wall time, the stop reason, and an optional per-iteration
//     history trace.
//
// Why
//
//   - The quadratic set-cover objective is NP-hard; exact solvers stall on
//     modest sizes while tabu search finds strong feasible selections fast.
//   - Short-term memory drives the search out of local optima that plain
//     hill climbing cannot leave.
//   - The engine works against a small Evaluator interface, so alternative
//     objective implementations plug in without touching the search.
//
// Determinism
//
//	One math/rand stream per run, derived from Options.Seed (0 selects a
//	fixed default seed). Same seed, instance, and options reproduce the
//	whole trajectory: construction, shuffles, sampling, and restarts.
//
// Feasibility
//
//	Every applied move preserves universe coverage, so the working solution
//	and the incumbent stay feasible from construction to termination.
//	Infeasible neighbors are silently not candidates; they are never errors.
//
// Complexity (n = instance size, L = selection size)
//
//   - Per iteration: O(n·L) delta evaluations for the exchange family,
//     dominated by O(L·n/64) bitmap coverage checks on gated moves.
//   - Memory: O(n) for membership mirrors plus 2×Tenure tabu slots.
//
// Usage
//
//	inst, err := qbf.ReadInstanceFile("instances/n100.txt")
//	if err != nil { /* ... */ }
//	ev, err := qbf.NewEvaluator(inst)
//	if err != nil { /* ... */ }
//
//	opts := tabu.DefaultOptions()
//	opts.Tenure = 30
//	opts.MaxIter = 10_000
//	opts.Seed = 42
//
//	res, err := tabu.Solve(ev, opts)
//	if err != nil { /* ... */ }
//	fmt.Println(res.Objective, res.StopReason)
//
// Options
//
//   - DefaultOptions(): first-improving scan, tenure 20, 1000 iterations,
//     everything optional off.
//   - Tenure:             tabu duration in iterations (list holds 2×Tenure slots).
//   - Strategy:           FirstImproving or BestImproving.
//   - MaxIter/TimeLimit/Patience: termination knobs; zero = unconfigured.
//   - Probabilistic + ProbabilisticParam: insertion-candidate sampling.
//   - Intensification + RestartPatience + MaxFixedElements: restart mechanics.
//   - Seed:               RNG seed (0 = fixed default).
//   - CollectHistory / OnIteration / Logger: observation hooks.
//
// Errors
//
//   - ErrNilEvaluator         if the evaluator is nil.
//   - ErrEmptyInstance        if the evaluator reports size <= 0.
//   - ErrBadTenure, ErrUnknownStrategy, ErrBadProbability,
//     ErrBadRestartPatience, ErrNegativeFixedCap, ErrNegativeLimit
//     for malformed Options.
//   - ErrConstructionFailed   if the instance cannot be covered at all.
package tabu
