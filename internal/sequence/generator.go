package sequence

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/leonardcser/look-and-say/internal/cache"
)

const (
	// Term indices must satisfy MinExclusive < n < MaxExclusive.
	MinExclusive = 3
	MaxExclusive = 100

	// DefaultMaxDepth bounds the recursive strategy's call depth.
	DefaultMaxDepth = 1000
)

// Validate reports whether n is an accepted term index.
func Validate(n int) error {
	if n <= MinExclusive || n >= MaxExclusive {
		return &ValidationError{N: n}
	}
	return nil
}

// GenerateTerm computes term n with a throwaway Generator.
func GenerateTerm(n int, s Strategy) (string, error) {
	g := NewGenerator(nil)
	defer g.cache.Close()
	return g.Term(context.Background(), n, s)
}

// Stats counts work done by a Generator.
type Stats struct {
	// Encodes is the number of Encode calls across all strategies.
	Encodes int64
	// CacheHits counts memoized calls answered straight from the cache.
	CacheHits int64
	// CacheMisses counts memoized calls that had to extend the cache.
	CacheMisses int64
}

// Generator computes look-and-say terms for one session. The memoized
// strategy reads and extends the session's TermCache; the other strategies
// never touch it. A Generator is safe for concurrent use.
type Generator struct {
	id       string
	cache    cache.TermCache
	maxDepth int

	// mu serializes memoized calls so cache extension is never interleaved
	mu sync.Mutex

	encodes atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

type Option func(*Generator)

// WithMaxDepth sets how deep the recursive strategy may go.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) { g.maxDepth = depth }
}

// WithID sets the session id reported by ID.
func WithID(id string) Option {
	return func(g *Generator) { g.id = id }
}

// NewGenerator returns a Generator over c. A nil c gets a fresh in-memory cache.
func NewGenerator(c cache.TermCache, opts ...Option) *Generator {
	if c == nil {
		c = cache.NewTerms(MaxExclusive)
	}
	g := &Generator{cache: c, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	return g
}

// ID returns the session id.
func (g *Generator) ID() string { return g.id }

// Stats returns a snapshot of the work counters.
func (g *Generator) Stats() Stats {
	return Stats{
		Encodes:     g.encodes.Load(),
		CacheHits:   g.hits.Load(),
		CacheMisses: g.misses.Load(),
	}
}

// Term returns term n computed with strategy s. n is validated before any
// work starts; ctx is checked between encoder steps.
func (g *Generator) Term(ctx context.Context, n int, s Strategy) (string, error) {
	if err := Validate(n); err != nil {
		return "", err
	}
	return g.term(ctx, n, s)
}

func (g *Generator) term(ctx context.Context, n int, s Strategy) (string, error) {
	if n < 1 {
		return "", &ValidationError{N: n}
	}
	switch s {
	case Recursive:
		if n-1 > g.maxDepth {
			return "", &RecursionLimitError{N: n, Limit: g.maxDepth}
		}
		return g.recursive(ctx, n)
	case Iterative:
		return g.iterative(ctx, n)
	case Memoized:
		return g.memoized(ctx, n)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func (g *Generator) encode(value string) string {
	g.encodes.Add(1)
	return Encode(value)
}

func (g *Generator) recursive(ctx context.Context, n int) (string, error) {
	if n == 1 {
		return "1", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prev, err := g.recursive(ctx, n-1)
	if err != nil {
		return "", err
	}
	return g.encode(prev), nil
}

func (g *Generator) iterative(ctx context.Context, n int) (string, error) {
	current := "1"
	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		current = g.encode(current)
	}
	return current, nil
}

func (g *Generator) memoized(ctx context.Context, n int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	highest, err := g.cache.Highest()
	if err != nil {
		return "", err
	}
	if highest == 0 {
		if err := g.cache.Put(1, "1"); err != nil {
			return "", err
		}
		highest = 1
	}

	if n <= highest {
		v, ok, err := g.cache.Get(n)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("term cache reports highest index %d but has no value for %d", highest, n)
		}
		g.hits.Add(1)
		return v, nil
	}
	g.misses.Add(1)

	current, ok, err := g.cache.Get(highest)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("term cache reports highest index %d but has no value for it", highest)
	}
	for i := highest + 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		current = g.encode(current)
		if err := g.cache.Put(i, current); err != nil {
			return "", fmt.Errorf("cache term %d: %w", i, err)
		}
	}
	return current, nil
}
