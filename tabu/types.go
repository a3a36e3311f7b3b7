// Package tabu: sentinel errors, strategy/stop enumerations, and result types.
// All user-facing failures are package-level sentinels matched via errors.Is;
// nothing in this package panics on user input.

package tabu

import (
	"errors"
	"time"

	"github.com/katalvlaran/scqbf/qbf"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tabu: ..." for consistency and to allow
// easy grepping across logs. Configuration errors are fail-fast: Solve
// validates Options before touching the evaluator and returns the first
// violation in stage order (see validate.go).

var (
	// ErrNilEvaluator indicates that Solve or Construct received a nil
	// evaluator.
	ErrNilEvaluator = errors.New("tabu: nil evaluator")

	// ErrEmptyInstance indicates that the evaluator reports a non-positive
	// instance size; there is nothing to search.
	ErrEmptyInstance = errors.New("tabu: evaluator reports an empty instance")

	// ErrBadTenure indicates Tenure <= 0. The tabu list holds 2×Tenure slots,
	// so a non-positive tenure leaves no short-term memory at all.
	ErrBadTenure = errors.New("tabu: tenure must be positive")

	// ErrUnknownStrategy indicates a Strategy value outside the declared enum.
	ErrUnknownStrategy = errors.New("tabu: unknown strategy")

	// ErrBadProbability indicates Probabilistic mode with a sampling parameter
	// outside the open interval (0,1). 0 would empty the candidate list and
	// 1 would disable sampling silently; both are configuration mistakes.
	ErrBadProbability = errors.New("tabu: probabilistic parameter must lie strictly in (0,1)")

	// ErrBadRestartPatience indicates Intensification with RestartPatience <= 0.
	ErrBadRestartPatience = errors.New("tabu: restart patience must be positive")

	// ErrNegativeFixedCap indicates MaxFixedElements < 0.
	ErrNegativeFixedCap = errors.New("tabu: max fixed elements must be non-negative")

	// ErrNegativeLimit indicates a negative MaxIter, Patience, or TimeLimit.
	// Zero means "unconfigured"; negatives are undefined.
	ErrNegativeLimit = errors.New("tabu: negative termination limit")

	// ErrConstructionFailed indicates that the constructive heuristic ran out
	// of coverage-improving candidates before reaching feasibility. This is
	// fatal: it means the instance cannot be covered at all.
	ErrConstructionFailed = errors.New("tabu: constructive heuristic exhausted candidates before feasibility")
)

// Strategy selects how the neighborhood is scanned each iteration.
type Strategy int

const (
	// FirstImproving shuffles the move families and their candidate lists,
	// then applies the first strictly improving admissible move. When no
	// improving move exists anywhere, it degrades to one best-improving
	// sweep so the search always advances.
	FirstImproving Strategy = iota

	// BestImproving scans the full neighborhood and applies the best
	// admissible move even when it worsens the objective.
	BestImproving
)

// String implements fmt.Stringer for logs and test diagnostics.
func (s Strategy) String() string {
	switch s {
	case FirstImproving:
		return "first-improving"
	case BestImproving:
		return "best-improving"
	default:
		return "unknown"
	}
}

// StopReason labels why the search terminated.
type StopReason string

const (
	// StopMaxIter: the iteration counter reached MaxIter.
	StopMaxIter StopReason = "max_iter"

	// StopTimeLimit: elapsed wall-clock time reached TimeLimit.
	StopTimeLimit StopReason = "time_limit"

	// StopPatience: Patience consecutive non-improving iterations.
	StopPatience StopReason = "patience_exceeded"
)

// Evaluator is the problem contract the engine searches against. All queries
// are pure; *qbf.Evaluator satisfies the interface. The delta queries return
// exact objective differences and must handle degenerate inputs (selected
// "in", absent "out", in==out) by folding to the cheaper query.
type Evaluator interface {
	// N returns the instance size (elements == universe items).
	N() int

	// Objective returns the quadratic value of a selection, feasible or not.
	Objective(s *qbf.Solution) float64

	// IsFeasible reports whether the selection covers the whole universe.
	IsFeasible(s *qbf.Solution) bool

	// IsValid reports structural validity plus feasibility.
	IsValid(s *qbf.Solution) bool

	// InsertionDelta returns the exact objective change of adding e.
	InsertionDelta(e int, s *qbf.Solution) float64

	// RemovalDelta returns the exact objective change of dropping e.
	RemovalDelta(e int, s *qbf.Solution) float64

	// ExchangeDelta returns the exact objective change of swapping out for in,
	// including the in↔out cross term (an exchange is NOT insertion+removal).
	ExchangeDelta(in, out int, s *qbf.Solution) float64

	// InsertionCoverageGain returns how many uncovered items e would cover.
	InsertionCoverageGain(e int, s *qbf.Solution) float64
}

// HistoryPoint is one per-iteration observation: the objective of the
// working solution after the iteration's move and the incumbent objective.
// Current carries the raw incremental accumulator (not re-rounded).
type HistoryPoint struct {
	Iteration int
	Current   float64
	Best      float64
}

// Result is the outcome of one Solve run.
type Result struct {
	// Best is the incumbent solution; feasible whenever Solve returns nil.
	Best *qbf.Solution

	// Objective is the evaluator's objective of Best.
	Objective float64

	// Iterations is the final value of the iteration counter, including the
	// iteration on which a termination rule fired.
	Iterations int

	// Duration is the wall-clock time spent inside Solve.
	Duration time.Duration

	// StopReason labels the termination rule that fired.
	StopReason StopReason

	// History holds one point per move iteration when CollectHistory is set;
	// nil otherwise.
	History []HistoryPoint
}
