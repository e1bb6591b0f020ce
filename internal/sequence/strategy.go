package sequence

import (
	"fmt"
	"strings"
)

// Strategy selects how a Generator computes a term.
type Strategy int

const (
	// Memoized replays the encoder from the highest cached term and caches
	// every term it computes.
	Memoized Strategy = iota
	// Iterative applies the encoder n-1 times starting from "1".
	Iterative
	// Recursive computes term(n-1) recursively and encodes it.
	Recursive
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{Recursive, Iterative, Memoized}

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	case Memoized:
		return "memoized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	case "memoized", "memo":
		return Memoized, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
