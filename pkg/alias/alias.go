// Package alias implements Walker's alias method for O(1) sampling from a
// fixed discrete distribution.
package alias

import "math/rand"

// Table is a pair of equal-length arrays representing a discrete
// distribution prepared for O(1) sampling. J holds the "alias" index for
// each slot and Q holds the probability of staying on that slot instead of
// taking the alias.
type Table struct {
	j []int
	q []float64
}

// Build constructs a Table from a normalised probability vector p (the
// entries must sum to 1 within floating-point tolerance). p must be
// non-empty; callers that would otherwise build an alias table over zero
// outcomes (a degree-0 node) must not call Build at all — see the trap
// handling in package walk.
func Build(p []float64) Table {
	k := len(p)
	q := make([]float64, k)
	j := make([]int, k)

	small := make([]int, 0, k)
	large := make([]int, 0, k)

	for i, pi := range p {
		q[i] = float64(k) * pi
		if q[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		j[s] = l
		q[l] = q[l] + q[s] - 1.0

		if q[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Remaining entries in either worklist are numerically ~1; clamp away
	// the tiny negative/positive drift from the subtraction above.
	for i := range q {
		if q[i] < 0 {
			q[i] = 0
		} else if q[i] > 1 {
			q[i] = 1
		}
	}

	return Table{j: j, q: q}
}

// Len returns the size of the distribution the table was built over.
func (t Table) Len() int { return len(t.q) }

// Sample draws one outcome in [0, Len()) using exactly two random draws
// from rng.
func (t Table) Sample(rng *rand.Rand) int {
	k := len(t.q)
	i := rng.Intn(k)
	if rng.Float64() < t.q[i] {
		return i
	}
	return t.j[i]
}

// Probabilities reconstructs the exact probability vector the table
// encodes, algebraically rather than by sampling: outcome i is reached
// either by landing on slot i and staying (q[i]/k), or by landing on some
// other slot j and following its alias to i ((1-q[j])/k for every j whose
// J[j] == i).
func (t Table) Probabilities() []float64 {
	k := len(t.q)
	p := make([]float64, k)
	for i := 0; i < k; i++ {
		p[i] += t.q[i] / float64(k)
		if t.j[i] != i {
			p[t.j[i]] += (1 - t.q[i]) / float64(k)
		}
	}
	return p
}
