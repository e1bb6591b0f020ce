package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfDomain is matched by every *ValidationError via errors.Is.
	ErrOutOfDomain = errors.New("sequence: term index out of domain")
	// ErrUnknownStrategy is returned by ParseStrategy.
	ErrUnknownStrategy = errors.New("sequence: unknown strategy")
)

// ValidationError is returned when a requested term index is outside 3 < n < 100.
type ValidationError struct {
	N int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("n must satisfy %d < n < %d, got %d", MinExclusive, MaxExclusive, e.N)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrOutOfDomain
}

// RecursionLimitError is returned by the recursive strategy when the term
// would need more nested calls than the generator allows.
type RecursionLimitError struct {
	N     int
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("recursive strategy: term %d needs depth %d, limit is %d", e.N, e.N-1, e.Limit)
}
