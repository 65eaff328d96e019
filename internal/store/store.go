// Package store persists shell command history in a BoltDB file.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketHistory = []byte("history")

// DefaultHistoryLimit caps stored entries when no limit is configured.
const DefaultHistoryLimit = 500

// historyEntry is the JSON value stored per command line
type historyEntry struct {
	Line string    `json:"line"`
	At   time.Time `json:"at"`
}

// HistoryStore keeps the most recent command lines, oldest first.
// With an empty path it runs in memory-only mode.
type HistoryStore struct {
	db    *bolt.DB
	limit int

	mu    sync.RWMutex // Protects lines
	lines []string

	now func() time.Time
}

// NewHistoryStore opens (or creates) the history database at path and loads
// the retained entries. limit <= 0 uses DefaultHistoryLimit.
func NewHistoryStore(path string, limit int) (*HistoryStore, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s := &HistoryStore{limit: limit, now: time.Now}
	if path == "" {
		// Memory-only mode (no persistence)
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	s.db = db

	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *HistoryStore) load() error {
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHistory).ForEach(func(_, v []byte) error {
			var e historyEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return nil // Skip corrupt entries
			}
			lines = append(lines, e.Line)
			return nil
		})
	})
	if err != nil {
		return err
	}
	if len(lines) > s.limit {
		lines = lines[len(lines)-s.limit:]
	}
	s.lines = lines
	return nil
}

// Close releases the database file.
func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records a line and drops the oldest entries beyond the limit.
func (s *HistoryStore) Append(line string) error {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	if len(s.lines) > s.limit {
		s.lines = s.lines[len(s.lines)-s.limit:]
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	data, err := json.Marshal(historyEntry{Line: line, At: s.now()})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(itob(seq), data); err != nil {
			return err
		}
		return trim(b, s.limit)
	})
}

// trim deletes the oldest keys until at most limit remain. Keys are
// counted with a cursor so entries Put earlier in the same tx are included.
func trim(b *bolt.Bucket, limit int) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	if len(keys) <= limit {
		return nil
	}
	for _, k := range keys[:len(keys)-limit] {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to n of the newest lines, oldest first. n <= 0 returns all.
func (s *HistoryStore) Recent(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.lines
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Len returns the number of retained lines.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
