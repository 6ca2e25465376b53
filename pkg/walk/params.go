package walk

import "fmt"

// Mode selects whether the preprocessor scores transitions with the
// heterogeneous edge-type term (xn2v) or the plain node2vec factor.
type Mode int

const (
	// Homogeneous scores transitions with the node2vec return/in-out
	// factor alone.
	Homogeneous Mode = iota

	// Heterogeneous additionally weights each neighbour by the per-type
	// probability mass P(t), biasing toward edge types other than the
	// one just traversed (the xn2v extension, controlled by Gamma).
	Heterogeneous
)

// Params bundles the second-order bias parameters controlling transition
// scoring. P, Q and Gamma must be strictly positive; ChangeNodeTypeWeight
// and ChangeEdgeTypeWeight are validated the same way but are reserved —
// accepted and checked, not yet consumed by any scoring path.
type Params struct {
	P, Q, Gamma float64

	ChangeNodeTypeWeight float64
	ChangeEdgeTypeWeight float64

	Mode Mode
}

// DefaultParams returns unbiased node2vec parameters (p = q = gamma = 1,
// homogeneous mode). ChangeNodeTypeWeight/ChangeEdgeTypeWeight default to
// 1 — they are validated but not yet consumed by any scoring path.
func DefaultParams() Params {
	return Params{
		P:                    1,
		Q:                    1,
		Gamma:                1,
		ChangeNodeTypeWeight: 1,
		ChangeEdgeTypeWeight: 1,
		Mode:                 Homogeneous,
	}
}

func (p Params) validate() error {
	for name, v := range map[string]float64{
		"p":                    p.P,
		"q":                    p.Q,
		"gamma":                p.Gamma,
		"changeNodeTypeWeight": p.ChangeNodeTypeWeight,
		"changeEdgeTypeWeight": p.ChangeEdgeTypeWeight,
	} {
		if v <= 0 {
			return fmt.Errorf("walk: parameter %s must be > 0, got %v: %w", name, v, ErrInvalidParams)
		}
	}
	return nil
}
