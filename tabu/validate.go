// Package tabu - configuration validation.
//
// Deterministic, side-effect free, fail-fast: the first violated stage wins.
// Only sentinel errors from types.go; no logging, no panics.
package tabu

// validateOptions checks the internal consistency of Options without
// touching the evaluator.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Stage 1: strategy must be a declared enum value.
	switch opts.Strategy {
	case FirstImproving, BestImproving:
		// ok
	default:
		return ErrUnknownStrategy
	}

	// Stage 2: short-term memory shape.
	if opts.Tenure <= 0 {
		return ErrBadTenure
	}

	// Stage 3: termination knobs. Zero means unconfigured; negatives are
	// undefined and rejected rather than silently treated as zero.
	if opts.MaxIter < 0 || opts.Patience < 0 || opts.TimeLimit < 0 {
		return ErrNegativeLimit
	}

	// Stage 4: probabilistic sampling parameter, only when the mode is on.
	if opts.Probabilistic {
		if !(opts.ProbabilisticParam > 0 && opts.ProbabilisticParam < 1) {
			return ErrBadProbability
		}
	}

	// Stage 5: intensification shape, only when the mode is on.
	if opts.Intensification {
		if opts.RestartPatience <= 0 {
			return ErrBadRestartPatience
		}
		if opts.MaxFixedElements < 0 {
			return ErrNegativeFixedCap
		}
	}

	return nil
}
