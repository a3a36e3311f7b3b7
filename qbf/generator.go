// Package qbf - seeded random instance generation for benchmarks and tests.
//
// Instances come out coverable by construction: memberships are sampled
// independently with the requested density, then every still-uncovered
// universe item is patched into one random set. Determinism follows the
// caller-supplied RNG; nil falls back to the fixed default stream so that
// generator output is reproducible even without explicit seeding.
package qbf

import (
	"math"
	"math/rand"
)

// defaultGenSeed is the fixed seed used when RandomInstance receives a nil
// RNG. Arbitrary but stable, for reproducible defaults.
const defaultGenSeed int64 = 1

// RandomInstance builds a coverable instance of size n.
//
// Parameters:
//   - density ∈ [0,1]: independent probability that element k covers item u.
//   - minA ≤ maxA, both finite: objective entries are uniform in [minA,maxA).
//   - rng: the deterministic stream; nil uses a fixed default seed.
//
// A fix-up pass assigns every item missed by the density sampling to one
// uniformly random set, so Coverable() always holds on the result.
//
// Errors: ErrNonPositiveSize, ErrBadDensity, ErrBadWeightRange.
//
// Complexity: O(n²) time and space.
func RandomInstance(n int, density float64, minA, maxA float64, rng *rand.Rand) (*Instance, error) {
	// Stage 1: parameter sanity.
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, ErrBadDensity
	}
	if math.IsNaN(minA) || math.IsNaN(maxA) || math.IsInf(minA, 0) || math.IsInf(maxA, 0) || minA > maxA {
		return nil, ErrBadWeightRange
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultGenSeed))
	}

	// Stage 2: density-driven memberships.
	var (
		sets    = make([][]int, n)
		covered = make([]bool, n) // items covered by at least one set so far
		k       int               // element index
		u       int               // universe item index
	)
	for k = 0; k < n; k++ {
		sets[k] = make([]int, 0, int(density*float64(n))+1)
		for u = 0; u < n; u++ {
			if r.Float64() < density {
				sets[k] = append(sets[k], u)
				covered[u] = true
			}
		}
	}

	// Stage 3: fix-up. Each uncovered item joins one random set.
	for u = 0; u < n; u++ {
		if covered[u] {
			continue
		}
		k = r.Intn(n)
		sets[k] = append(sets[k], u)
	}

	// Stage 4: upper-triangular objective rows, uniform in [minA, maxA).
	var (
		tri  = make([][]float64, n)
		span = maxA - minA
		i, j int
	)
	for i = 0; i < n; i++ {
		tri[i] = make([]float64, n-i)
		for j = 0; j < n-i; j++ {
			tri[i][j] = minA + span*r.Float64()
		}
	}

	return NewInstance(sets, tri)
}
