// Package tabu - move generation and the two scan strategies.
//
// Each iteration works on three move families over the working solution:
//   - insertion: add one unselected element;
//   - removal:   drop one selected, non-fixed element, but only when the
//     remainder still covers the universe;
//   - exchange:  swap one unselected element in for one selected, non-fixed
//     element out.
//
// Admission is tabu-discipline plus aspiration: a move touching a tabu
// element is blocked unless it would push the working objective strictly
// above the incumbent. Feasibility rules differ by strategy on exchanges,
// mirroring the reference behavior: the best-improving scan accepts an
// exchange when the full post-swap selection is feasible, the
// first-improving scan demands the stricter removal-only intermediate.
//
// Check order inside the scans is cheapest-first: delta, then tabu
// admission, then coverage feasibility (bitmap unions are the costly part).
package tabu

// move is one candidate neighborhood step. Sides are tagged, not sentinel
// indices: hasIn/hasOut tell which of in/out are meaningful. A move with
// neither side never leaves the selector (the engine records a skipped
// iteration instead).
type move struct {
	in     int
	out    int
	hasIn  bool
	hasOut bool
	delta  float64
}

// eligible applies the tabu discipline with aspiration: blocked moves pass
// only when current+delta strictly beats the incumbent objective.
func (en *engine) eligible(mv move) bool {
	var blocked bool
	blocked = (mv.hasIn && en.tl.contains(mv.in)) || (mv.hasOut && en.tl.contains(mv.out))
	if !blocked {
		return true
	}

	return en.curObj+mv.delta > en.bestObj
}

// buildCandidates assembles the per-iteration candidate lists:
//   - insert: unselected elements, downsampled to max(1, ⌊|CL|·param⌋)
//     when probabilistic mode is on (one sample per iteration, shared with
//     the exchange family's incoming side);
//   - remove: selected elements minus the restart-fixed ones.
//
// Complexity: O(n) plus an O(|CL|) shuffle in probabilistic mode.
func (en *engine) buildCandidates() (insert, remove []int) {
	insert = make([]int, 0, en.n-en.current.Len())

	var e int
	for e = 0; e < en.n; e++ {
		if !en.inCurrent[e] {
			insert = append(insert, e)
		}
	}
	if en.opts.Probabilistic && len(insert) > 0 {
		shuffleIntsInPlace(insert, en.rng)
		keep := int(float64(len(insert)) * en.opts.ProbabilisticParam)
		if keep < 1 {
			keep = 1
		}
		insert = insert[:keep]
	}

	remove = make([]int, 0, en.current.Len())
	for _, e = range en.current.Elements {
		if !en.fixed[e] {
			remove = append(remove, e)
		}
	}

	return insert, remove
}

// bestEligible scans all three families and returns the best admissible
// move by strict delta comparison (first writer wins ties), regardless of
// sign. Family order: insertions, removals, exchanges.
func (en *engine) bestEligible(insert, remove []int) (move, bool) {
	var (
		best  move
		found bool
		mv    move
		in    int
		out   int
	)

	// Insertions: always coverage-safe, no feasibility gate needed.
	for _, in = range insert {
		mv = move{in: in, hasIn: true, delta: en.ev.InsertionDelta(in, en.current)}
		if !en.eligible(mv) {
			continue
		}
		if !found || mv.delta > best.delta {
			best, found = mv, true
		}
	}

	// Removals: the remainder must still cover the universe.
	for _, out = range remove {
		mv = move{out: out, hasOut: true, delta: en.ev.RemovalDelta(out, en.current)}
		if !en.eligible(mv) {
			continue
		}
		if found && mv.delta <= best.delta {
			continue // cannot win; skip the costly coverage check
		}
		if !en.ev.IsFeasible(en.current.WithRemoval(out)) {
			continue
		}
		best, found = mv, true
	}

	// Exchanges: the full post-swap selection must be feasible.
	for _, in = range insert {
		for _, out = range remove {
			mv = move{in: in, out: out, hasIn: true, hasOut: true,
				delta: en.ev.ExchangeDelta(in, out, en.current)}
			if !en.eligible(mv) {
				continue
			}
			if found && mv.delta <= best.delta {
				continue
			}
			if !en.ev.IsFeasible(en.current.WithExchange(in, out)) {
				continue
			}
			best, found = mv, true
		}
	}

	return best, found
}

// Family tags for the shuffled first-improving scan order.
const (
	famInsert = iota
	famRemove
	famExchange
)

// firstImproving shuffles the family order and the candidate lists, then
// returns the first strictly improving admissible move. When no family
// yields one, it falls back to a bestEligible sweep over the same
// candidates so the iteration still advances and the tabu list still ages.
func (en *engine) firstImproving(insert, remove []int) (move, bool) {
	var (
		order = []int{famInsert, famRemove, famExchange}
		ins   = shuffledCopy(insert, en.rng)
		rem   = shuffledCopy(remove, en.rng)
		mv    move
		fam   int
		in    int
		out   int
	)
	shuffleIntsInPlace(order, en.rng)

	for _, fam = range order {
		switch fam {
		case famInsert:
			for _, in = range ins {
				mv = move{in: in, hasIn: true, delta: en.ev.InsertionDelta(in, en.current)}
				if mv.delta > 0 && en.eligible(mv) {
					return mv, true
				}
			}

		case famRemove:
			for _, out = range rem {
				mv = move{out: out, hasOut: true, delta: en.ev.RemovalDelta(out, en.current)}
				if mv.delta > 0 && en.eligible(mv) &&
					en.ev.IsFeasible(en.current.WithRemoval(out)) {
					return mv, true
				}
			}

		case famExchange:
			for _, in = range ins {
				for _, out = range rem {
					mv = move{in: in, out: out, hasIn: true, hasOut: true,
						delta: en.ev.ExchangeDelta(in, out, en.current)}
					// Stricter gate than the best-improving scan: the
					// removal-only intermediate must already be feasible.
					if mv.delta > 0 && en.eligible(mv) &&
						en.ev.IsFeasible(en.current.WithRemoval(out)) {
						return mv, true
					}
				}
			}
		}
	}

	// No improving move anywhere: degrade to best-improving over the same
	// shuffled candidates. The search keeps moving instead of stalling.
	return en.bestEligible(ins, rem)
}

// selectMove dispatches to the configured strategy.
func (en *engine) selectMove() (move, bool) {
	insert, remove := en.buildCandidates()
	if en.opts.Strategy == BestImproving {
		return en.bestEligible(insert, remove)
	}

	return en.firstImproving(insert, remove)
}
