// Package qbf models Set-Cover Quadratic Binary Function (SC-QBF) instances
// and provides a stateless incremental evaluator over candidate solutions.
//
// What
//
//   - Instance: an immutable problem of size n with
//   - one coverage set Sₖ ⊆ {0..n−1} per element k (roaring bitmaps)
//   - an upper-triangular objective matrix A (n×n, zeros below the diagonal)
//   - Solution: a plain list of selected element indices with copy-on-write
//     mutators (WithInsertion / WithRemoval / WithExchange).
//   - Evaluator: pure queries over (instance, solution):
//   - Objective, IsFeasible, IsValid
//   - InsertionDelta, RemovalDelta, ExchangeDelta (incremental, O(|S|))
//   - InsertionCoverageGain (marginal coverage of a candidate element)
//   - Instance I/O: ParseInstance / ReadInstanceFile for the classic
//     upper-triangular text format, RandomInstance for seeded benchmarks.
//
// Why
//
//   - SC-QBF couples a quadratic objective with a set-cover feasibility side
//     constraint: a selection is feasible only when the union of its coverage
//     sets equals the whole universe {0..n−1}.
//   - Local-search engines probe thousands of neighbor moves per second; the
//     delta queries answer each probe in O(|S|) instead of re-summing the
//     full O(|S|²) objective.
//
// Feasibility vs. validity
//
//	Objective and the delta queries are defined for ANY structurally valid
//	selection, feasible or not; engines routinely evaluate infeasible
//	intermediates. IsFeasible answers the coverage question alone, IsValid
//	additionally re-checks the structural invariants (range, uniqueness).
//
// Complexity (n = instance size, L = |solution|)
//
//   - Objective:              O(L²)
//   - Insertion/Removal delta: O(L)
//   - Exchange delta:          O(L)
//   - IsFeasible:              O(L) bitmap unions
//   - InsertionCoverageGain:   O(L) bitmap unions + one AndNot
//
// Usage
//
//	inst, err := qbf.ReadInstanceFile("instances/n100.txt")
//	if err != nil { /* ErrTruncatedInput, ErrBadToken, ... */ }
//
//	ev, _ := qbf.NewEvaluator(inst)
//	s := &qbf.Solution{Elements: []int{0, 3, 7}}
//	if ev.IsFeasible(s) {
//	    fmt.Println(ev.Objective(s))
//	}
//	delta := ev.InsertionDelta(12, s) // objective change if 12 is added
//
// Errors
//
//   - ErrNonPositiveSize, ErrShapeMismatch, ErrElementOutOfRange, ErrNaNInf
//     from instance construction.
//   - ErrTruncatedInput, ErrBadToken from the parser.
//   - ErrBadDensity, ErrBadWeightRange from the generator.
//   - ErrNilSolution, ErrSolutionElement, ErrDuplicateElement from
//     ValidateSolution.
//
// All errors are package-level sentinels; match them with errors.Is.
package qbf
