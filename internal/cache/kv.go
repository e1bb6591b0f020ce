package cache

import "errors"

// TermCache maps a 1-based term index to the term's digit string.
// Entries are dense from index 1 and never overwritten or evicted.
// Implementations must be safe for concurrent use by multiple goroutines.
type TermCache interface {
	// Get returns the value stored for index n, if any.
	Get(n int) (string, bool, error)
	// Put stores value for index n. Putting an index that is already
	// present is a no-op; putting past Highest()+1 fails with ErrGap.
	Put(n int, value string) error
	// Highest returns the largest stored index, 0 when empty.
	Highest() (int, error)
	Close() error
}

var (
	ErrGap    = errors.New("cache: index would leave a gap")
	ErrIndex  = errors.New("cache: index must be positive")
	ErrClosed = errors.New("cache: closed")
)
