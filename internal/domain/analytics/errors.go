package analytics

import "errors"

// Sentinel kinds for analytics errors. Each marks a store that breaks the
// results-sheet invariants; none of them is expected with well-formed data.
var (
	ErrEmptyCategory    = errors.New("runner has no category peers")
	ErrNoCategoryWinner = errors.New("category has no first-place runner")
	ErrInvalidTime      = errors.New("finish time must be positive")
	ErrEmptyStore       = errors.New("runner store is empty")
)
