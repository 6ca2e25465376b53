package walk

import "errors"

// Sentinel errors surfaced by TransitionPreprocessor and Walker.
var (
	// ErrNotPreprocessed is returned when a walk is requested before the
	// preprocessor has reached the Ready state.
	ErrNotPreprocessed = errors.New("walk: preprocessor not ready")

	// ErrDegenerateDistribution is returned at construction time when a
	// non-trap node's neighbour scores sum to zero, or any single score is
	// negative beyond floating-point tolerance.
	ErrDegenerateDistribution = errors.New("walk: degenerate transition distribution")

	// ErrInvalidParams is returned when a bias parameter that must be
	// positive (p, q, gamma, changeNodeTypeWeight, changeEdgeTypeWeight)
	// is not.
	ErrInvalidParams = errors.New("walk: invalid bias parameters")
)
