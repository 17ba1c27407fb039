// Package storage persists pattern databases and tactical-read
// results across process runs, backed by BadgerDB the same way the
// teacher's own storage package persisted user preferences and game
// statistics. Two concerns live here: pattern.DB blobs (loaded once,
// reused across analyses) and a tactics.Cache implementation that
// survives past a single analyzer run, unlike the in-memory cache
// tactics.NewReader() uses by default.
package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/pattern"
	"github.com/hailam/wormscope/internal/tactics"
)

const patternKeyPrefix = "pattern:"

// Storage wraps a BadgerDB instance opened at a caller-supplied
// directory (the teacher's NewStorage instead resolved a fixed
// per-user config directory; the worm analyzer has no notion of a
// single user profile, so the directory is a parameter here).
type Storage struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB store at dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SavePatternDB persists a pattern database under name so it can be
// reloaded by a later process without re-assembling it from literals.
func (s *Storage) SavePatternDB(name string, db *pattern.DB) error {
	var buf bytes.Buffer
	if err := db.WriteBinary(&buf); err != nil {
		return fmt.Errorf("storage: encoding pattern db %q: %w", name, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(patternKeyPrefix+name), buf.Bytes())
	})
}

// LoadPatternDB loads a pattern database previously saved under name.
// It returns badger.ErrKeyNotFound (unwrapped) if name was never
// saved, so callers can fall back to a built-in default.
func (s *Storage) LoadPatternDB(name string) (*pattern.DB, error) {
	var db *pattern.DB
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(patternKeyPrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			loaded, err := pattern.LoadBinary(bytes.NewReader(val))
			if err != nil {
				return err
			}
			db = loaded
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// ReadCache is a tactics.Cache backed by BadgerDB: tactical reads
// survive past the process that computed them, the same persistence
// tablebase.CachedProber gives chess endgame probes except durable
// rather than in-process only.
type ReadCache struct {
	db *badger.DB
}

// NewReadCache wraps s as a tactics.Cache.
func (s *Storage) NewReadCache() *ReadCache { return &ReadCache{db: s.db} }

func readCacheKey(k tactics.ReadKey) []byte {
	buf := make([]byte, 8+8+8+1)
	binary.BigEndian.PutUint64(buf[0:8], k.Hash)
	binary.BigEndian.PutUint64(buf[8:16], uint64(k.Origin))
	binary.BigEndian.PutUint64(buf[16:24], uint64(k.Depth))
	buf[24] = byte(k.Kind)
	return append([]byte("tread:"), buf...)
}

// Get implements tactics.Cache.
func (c *ReadCache) Get(k tactics.ReadKey) (tactics.ReadResult, bool) {
	var result tactics.ReadResult
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(readCacheKey(k))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 9 {
				return fmt.Errorf("storage: corrupt tactical read cache entry (%d bytes)", len(val))
			}
			result = tactics.ReadResult{
				Code: tactics.Code(val[0]),
				Move: board.Point(binary.BigEndian.Uint64(val[1:9])),
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return tactics.ReadResult{}, false
	}
	return result, found
}

// Put implements tactics.Cache.
func (c *ReadCache) Put(k tactics.ReadKey, r tactics.ReadResult) {
	val := make([]byte, 9)
	val[0] = byte(r.Code)
	binary.BigEndian.PutUint64(val[1:9], uint64(r.Move))
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(readCacheKey(k), val)
	})
}
