package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	bolt "go.etcd.io/bbolt"
)

// Store is a TermCache backed by a bbolt file that lives only as long as
// the session: the file is created in a scratch directory and removed by
// Close. Values are zstd-compressed, which keeps long terms off the heap.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	db      *bolt.DB
	path    string
	bucket  []byte
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	mu      sync.RWMutex
	bytes   int
}

type StoreOptions struct {
	// Dir is where the session file is created. Defaults to os.TempDir().
	Dir string
	// ID names the session file. Defaults to a random UUID.
	ID string
	// CompressionLevel is a zstd level (1-22). 0 stores values raw.
	CompressionLevel int
}

const (
	flagRaw  byte = 0
	flagZstd byte = 1
)

// OpenStore creates a fresh session file and returns a Store over it.
func OpenStore(opts StoreOptions) (*Store, error) {
	dir := opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spill dir: %w", err)
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	path := filepath.Join(dir, "terms-"+id+".bbolt")

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second, NoSync: true})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, path: path, bucket: []byte("terms")}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		_ = s.Close()
		return nil, err
	}
	if opts.CompressionLevel > 0 {
		s.encoder, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(opts.CompressionLevel)))
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
	}
	s.decoder, err = zstd.NewReader(nil)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return s, nil
}

// Path returns the location of the session file.
func (s *Store) Path() string { return s.path }

// Close closes the database and deletes the session file.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if s.encoder != nil {
		_ = s.encoder.Close()
	}
	if s.decoder != nil {
		s.decoder.Close()
	}
	if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}

func (s *Store) Put(n int, value string) error {
	if n < 1 {
		return ErrIndex
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	// Layout: 1 byte flag || raw or zstd payload
	var buf []byte
	if s.encoder != nil {
		buf = s.encoder.EncodeAll([]byte(value), []byte{flagZstd})
	} else {
		buf = append([]byte{flagRaw}, value...)
	}
	stored := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		key := indexKey(n)
		if b.Get(key) != nil {
			return nil
		}
		highest := 0
		if k, _ := b.Cursor().Last(); k != nil {
			highest = int(binary.BigEndian.Uint64(k))
		}
		if n > highest+1 {
			return ErrGap
		}
		stored = true
		return b.Put(key, buf)
	})
	if err == nil && stored {
		s.bytes += len(value)
	}
	return err
}

// Bytes returns the total uncompressed length of all stored values.
func (s *Store) Bytes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bytes
}

func (s *Store) Get(n int) (string, bool, error) {
	if n < 1 {
		return "", false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return "", false, ErrClosed
	}
	var out []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get(indexKey(n))
		if v == nil {
			return nil
		}
		switch v[0] {
		case flagZstd:
			decoded, err := s.decoder.DecodeAll(v[1:], nil)
			if err != nil {
				return fmt.Errorf("decode term %d: %w", n, err)
			}
			out = decoded
		default:
			out = append([]byte{}, v[1:]...)
		}
		return nil
	}); err != nil {
		return "", false, err
	}
	if out == nil {
		return "", false, nil
	}
	return string(out), true, nil
}

func (s *Store) Highest() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, ErrClosed
	}
	highest := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if k, _ := tx.Bucket(s.bucket).Cursor().Last(); k != nil {
			highest = int(binary.BigEndian.Uint64(k))
		}
		return nil
	})
	return highest, err
}

func indexKey(n int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(n))
	return key
}
