package cache

import "fmt"

const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
)

// Options selects and configures a TermCache backend.
type Options struct {
	Backend          string
	Dir              string
	ID               string
	CompressionLevel int
}

// Open returns a new, empty TermCache for one session.
func Open(opts Options) (TermCache, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewTerms(100), nil
	case BackendBolt:
		return OpenStore(StoreOptions{
			Dir:              opts.Dir,
			ID:               opts.ID,
			CompressionLevel: opts.CompressionLevel,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q (use %q or %q)", opts.Backend, BackendMemory, BackendBolt)
	}
}
