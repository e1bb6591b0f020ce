// Package session binds a Generator to a term cache it owns, so every
// CLI invocation or server process gets independent memoization.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/leonardcser/look-and-say/internal/cache"
	"github.com/leonardcser/look-and-say/internal/config"
	"github.com/leonardcser/look-and-say/internal/sequence"
)

type Session struct {
	*sequence.Generator
	terms   cache.TermCache
	backend string
}

// Open creates a session with a fresh cache chosen by cfg.
func Open(cfg *config.Config) (*Session, error) {
	id := uuid.NewString()
	terms, err := cache.Open(cfg.CacheOptions(id))
	if err != nil {
		return nil, fmt.Errorf("open term cache: %w", err)
	}
	gen := sequence.NewGenerator(terms,
		sequence.WithID(id),
		sequence.WithMaxDepth(cfg.MaxDepth),
	)
	return &Session{Generator: gen, terms: terms, backend: cfg.Cache}, nil
}

// Backend names the cache backend in use.
func (s *Session) Backend() string { return s.backend }

// Footprint reports how many terms the session cache holds and, when the
// backend tracks it, their total length in digits.
func (s *Session) Footprint() (terms, bytes int, err error) {
	terms, err = s.terms.Highest()
	if err != nil {
		return 0, 0, err
	}
	if sized, ok := s.terms.(interface{ Bytes() int }); ok {
		bytes = sized.Bytes()
	}
	return terms, bytes, nil
}

// Close releases the cache; a bolt spill file is deleted.
func (s *Session) Close() error { return s.terms.Close() }
