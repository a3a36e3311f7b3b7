// Package qbf: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the qbf
// package. All constructors and validators MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package qbf

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qbf: ..." for consistency and to allow easy
// grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential (parser positions), wrap with
// fmt.Errorf("ctx: %w", ErrX) so callers can still match via errors.Is.

var (
	// ErrNilInstance indicates that a nil *Instance was passed to a constructor
	// or evaluator entry point.
	ErrNilInstance = errors.New("qbf: nil instance")

	// ErrNonPositiveSize is returned when the requested instance size n <= 0.
	ErrNonPositiveSize = errors.New("qbf: instance size must be positive")

	// ErrShapeMismatch indicates that the number of coverage sets or the
	// triangular matrix rows do not match the declared size n
	// (row i must carry exactly n-i entries).
	ErrShapeMismatch = errors.New("qbf: sets or matrix shape mismatch")

	// ErrElementOutOfRange indicates a coverage-set member outside [0..n-1].
	ErrElementOutOfRange = errors.New("qbf: set element out of range")

	// ErrNaNInf signals a NaN or ±Inf matrix entry; objective weights must be
	// finite for delta arithmetic to be well-defined.
	ErrNaNInf = errors.New("qbf: NaN or Inf matrix entry")

	// ErrOutOfRange indicates an index (element or matrix position) outside
	// valid bounds on an accessor. Accessors return this, never panic.
	ErrOutOfRange = errors.New("qbf: index out of range")

	// ErrNilSolution indicates that a nil *Solution was passed where a concrete
	// selection is required (ValidateSolution).
	ErrNilSolution = errors.New("qbf: nil solution")

	// ErrSolutionElement indicates a selected element outside [0..n-1].
	ErrSolutionElement = errors.New("qbf: solution element out of range")

	// ErrDuplicateElement indicates the same element selected twice; solutions
	// are sets represented as duplicate-free slices.
	ErrDuplicateElement = errors.New("qbf: duplicate solution element")

	// ErrTruncatedInput is returned by the parser when the token stream ends
	// before the declared shape is complete.
	ErrTruncatedInput = errors.New("qbf: truncated instance input")

	// ErrBadToken is returned by the parser when a token cannot be parsed as
	// the expected number. It is wrapped with the offending token for context.
	ErrBadToken = errors.New("qbf: unparsable instance token")

	// ErrBadDensity is returned by the generator for density outside [0,1].
	ErrBadDensity = errors.New("qbf: density must lie in [0,1]")

	// ErrBadWeightRange is returned by the generator when min > max or either
	// bound is NaN/±Inf.
	ErrBadWeightRange = errors.New("qbf: invalid weight range")
)
