// Package qbf - candidate solutions and their copy-on-write mutators.
//
// A Solution is just the list of selected element indices. Mutators never
// touch the receiver: each returns a fresh Solution, so engines can keep
// the incumbent and the candidate alive side by side without bookkeeping.
package qbf

// Solution is a selection of element indices. Elements must be unique and
// in [0..n-1] for the owning instance; ValidateSolution enforces this.
// Order carries no meaning but is preserved by the mutators, which keeps
// runs reproducible.
type Solution struct {
	Elements []int
}

// Len returns the number of selected elements. Nil-safe.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Elements)
}

// Contains reports whether element e is selected. Nil-safe.
//
// Complexity: O(L) linear scan; solutions are short relative to n.
func (s *Solution) Contains(e int) bool {
	if s == nil {
		return false
	}
	for _, v := range s.Elements {
		if v == e {
			return true
		}
	}

	return false
}

// Clone returns an independent copy (fresh backing array).
func (s *Solution) Clone() *Solution {
	out := &Solution{Elements: make([]int, s.Len())}
	if s != nil {
		copy(out.Elements, s.Elements)
	}

	return out
}

// WithInsertion returns a copy with e appended.
//
// Contract: e is not already selected; callers probing arbitrary elements
// should gate on Contains first. No dedup is performed here.
func (s *Solution) WithInsertion(e int) *Solution {
	out := &Solution{Elements: make([]int, s.Len(), s.Len()+1)}
	if s != nil {
		copy(out.Elements, s.Elements)
	}
	out.Elements = append(out.Elements, e)

	return out
}

// WithRemoval returns a copy without e. If e is not selected, the result is
// a plain copy.
func (s *Solution) WithRemoval(e int) *Solution {
	out := &Solution{Elements: make([]int, 0, s.Len())}
	if s == nil {
		return out
	}
	for _, v := range s.Elements {
		if v != e {
			out.Elements = append(out.Elements, v)
		}
	}

	return out
}

// WithExchange returns a copy with out removed and in appended.
//
// Contract: out is selected and in is not; degenerate inputs follow the
// WithRemoval/WithInsertion conventions above.
func (s *Solution) WithExchange(in, out int) *Solution {
	next := s.WithRemoval(out)
	next.Elements = append(next.Elements, in)

	return next
}

// ValidateSolution enforces the structural invariant: non-nil, every element
// in [0..n-1], no duplicates.
//
// Errors: ErrNilSolution, ErrNonPositiveSize, ErrSolutionElement,
// ErrDuplicateElement.
//
// Complexity: O(L) time, O(n) space.
func ValidateSolution(s *Solution, n int) error {
	if s == nil {
		return ErrNilSolution
	}
	if n <= 0 {
		return ErrNonPositiveSize
	}
	seen := make([]bool, n)

	var v int
	for _, v = range s.Elements {
		if v < 0 || v >= n {
			return ErrSolutionElement
		}
		if seen[v] {
			return ErrDuplicateElement
		}
		seen[v] = true
	}

	return nil
}
