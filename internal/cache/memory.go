package cache

import "sync"

// Terms is the in-memory TermCache. Indices are dense from 1, so values
// live in a slice where terms[n-1] holds term n.
type Terms struct {
	mu     sync.RWMutex
	terms  []string
	bytes  int
	closed bool
}

// NewTerms returns an empty in-memory cache with room for capacity terms.
func NewTerms(capacity int) *Terms {
	if capacity < 0 {
		capacity = 0
	}
	return &Terms{terms: make([]string, 0, capacity)}
}

func (t *Terms) Get(n int) (string, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return "", false, ErrClosed
	}
	if n < 1 || n > len(t.terms) {
		return "", false, nil
	}
	return t.terms[n-1], true, nil
}

func (t *Terms) Put(n int, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	switch {
	case n < 1:
		return ErrIndex
	case n <= len(t.terms):
		return nil
	case n > len(t.terms)+1:
		return ErrGap
	}
	t.terms = append(t.terms, value)
	t.bytes += len(value)
	return nil
}

func (t *Terms) Highest() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return 0, ErrClosed
	}
	return len(t.terms), nil
}

// Bytes returns the total length of all stored values.
func (t *Terms) Bytes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bytes
}

// Close releases the stored terms. Further calls fail with ErrClosed.
func (t *Terms) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.terms = nil
	t.bytes = 0
	t.closed = true
	return nil
}
