package loader

import "errors"

// Sentinel errors surfaced by Load. Per spec, Load never partially
// succeeds: on any of these the returned Graph is nil.
var (
	// ErrInputFormat covers malformed records: an empty source/destination
	// label or a non-numeric weight field. A header row is skipped, not
	// parsed.
	ErrInputFormat = errors.New("loader: malformed input")

	// ErrValidation covers semantically invalid input: a row (edge or
	// node-type) with fewer columns than the configured indices require,
	// non-positive weight, or a duplicate edge whose two occurrences
	// disagree on weight or type.
	ErrValidation = errors.New("loader: validation failed")
)
