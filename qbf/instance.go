// Package qbf - immutable SC-QBF instance representation.
//
// An Instance couples the two halves of the problem:
//   - coverage: one set Sₖ ⊆ {0..n−1} per element k, stored as roaring
//     bitmaps so unions and difference cardinalities stay cheap;
//   - objective: an upper-triangular matrix A, stored linearized row-major
//     in a dense 1D buffer a[i*n+j] to keep evaluator hot loops free of
//     interface indirection and bounds gymnastics.
//
// Design:
//   - Construction validates shape and values once; afterwards the instance
//     is read-only and safe to share across goroutines.
//   - Coverage completeness is deliberately NOT part of construction: an
//     instance whose sets cannot cover the universe is representable, and
//     surfaces later as a construction failure in the search layer.
//     Coverable() offers the pre-flight check for callers who want it early.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//
// Complexity: construction O(n² + Σ|Sₖ|); accessors O(1) except CoverageSet,
// which clones in O(|Sₖ|).
package qbf

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Instance is an immutable SC-QBF problem of size n.
// The zero value is not usable; build instances via NewInstance,
// ParseInstance/ReadInstanceFile, or RandomInstance.
type Instance struct {
	// n is the number of elements, which equals the universe size:
	// element indices and universe items both live in [0..n-1].
	n int

	// sets[k] is the coverage set of element k. Never nil after construction.
	sets []*roaring.Bitmap

	// a is the dense linearized objective matrix: a[i*n+j] = A[i][j].
	// Entries strictly below the main diagonal are zero by construction.
	a []float64
}

// NewInstance builds an instance from raw coverage sets and an
// upper-triangular objective matrix.
//
// Contract:
//   - len(sets) == n > 0; every member of sets[k] lies in [0..n-1].
//     Duplicate members within a set are tolerated (sets are sets).
//   - len(tri) == n and len(tri[i]) == n-i: row i carries A[i][i..n-1].
//     All entries must be finite.
//   - Coverage completeness is NOT checked here (see Coverable).
//
// Errors: ErrNonPositiveSize, ErrShapeMismatch, ErrElementOutOfRange, ErrNaNInf.
//
// Complexity: O(n² + Σ|sets[k]|) time, O(n²) space.
func NewInstance(sets [][]int, tri [][]float64) (*Instance, error) {
	// Stage 1: shape checks.
	var n int
	n = len(sets)
	if n == 0 {
		return nil, ErrNonPositiveSize
	}
	if len(tri) != n {
		return nil, ErrShapeMismatch
	}

	var (
		i int // row / element index
		j int // column offset within a triangular row
		e int // coverage-set member under validation
		x float64
	)
	for i = 0; i < n; i++ {
		if len(tri[i]) != n-i {
			return nil, ErrShapeMismatch
		}
	}

	// Stage 2: values. Matrix entries must be finite; set members in range.
	inst := &Instance{
		n:    n,
		sets: make([]*roaring.Bitmap, n),
		a:    make([]float64, n*n),
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n-i; j++ {
			x = tri[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrNaNInf
			}
			// Linearize: tri[i][j] is A[i][i+j].
			inst.a[i*n+i+j] = x
		}
	}
	for i = 0; i < n; i++ {
		bm := roaring.New()
		for _, e = range sets[i] {
			if e < 0 || e >= n {
				return nil, ErrElementOutOfRange
			}
			bm.Add(uint32(e))
		}
		inst.sets[i] = bm
	}

	return inst, nil
}

// N returns the instance size (elements == universe items).
//
// Complexity: O(1).
func (in *Instance) N() int {
	return in.n
}

// A returns the objective entry A[i][j]. Positions strictly below the main
// diagonal read as 0 (triangular storage). Out-of-range indices return
// ErrOutOfRange.
//
// Complexity: O(1).
func (in *Instance) A(i, j int) (float64, error) {
	if i < 0 || i >= in.n || j < 0 || j >= in.n {
		return 0, ErrOutOfRange
	}

	return in.a[i*in.n+j], nil
}

// CoverageSet returns an independent copy of element k's coverage set.
// The clone keeps the instance immutable; mutate the copy freely.
//
// Complexity: O(|Sₖ|).
func (in *Instance) CoverageSet(k int) (*roaring.Bitmap, error) {
	if k < 0 || k >= in.n {
		return nil, ErrOutOfRange
	}

	return in.sets[k].Clone(), nil
}

// Coverable reports whether the union of ALL coverage sets spans the whole
// universe {0..n-1}. An instance failing this check admits no feasible
// solution at all; constructive search on it fails with a sentinel.
//
// Complexity: O(Σ|Sₖ|) bitmap unions.
func (in *Instance) Coverable() bool {
	var (
		union = roaring.New() // accumulated coverage
		k     int             // element index
	)
	for k = 0; k < in.n; k++ {
		union.Or(in.sets[k])
	}

	return union.GetCardinality() == uint64(in.n)
}

// pairWeight returns A[u][v]+A[v][u] without range checks; at most one of
// the two terms is nonzero under triangular storage. Internal hot-path
// helper shared by the evaluator.
//
// Complexity: O(1).
func (in *Instance) pairWeight(u, v int) float64 {
	return in.a[u*in.n+v] + in.a[v*in.n+u]
}
