package tactics

import "github.com/hailam/wormscope/internal/board"

// ReadKey identifies a memoized tactical read: a position hash, the
// worm being read, which color is attacking, and the search depth used
// (a shallower read can't be reused to answer a deeper question). It
// is exported so an out-of-package Cache implementation (such as
// internal/storage's badger-backed one) can serialize it.
type ReadKey struct {
	Hash   uint64
	Origin board.Point
	Depth  int
	Kind   ReadKind
}

type ReadKind uint8

const (
	KindAttack ReadKind = iota
	KindDefense
)

type ReadResult struct {
	Code Code
	Move board.Point
}

// Cache memoizes tactical reads. It is the same replacement-by-depth
// idea as the teacher's engine.TranspositionTable, narrowed to the
// reader's (position, origin, depth, kind) key instead of a search
// ply. internal/storage provides a badger-backed Cache that persists
// across process runs; memCache below is the in-memory default.
type Cache interface {
	Get(k ReadKey) (ReadResult, bool)
	Put(k ReadKey, r ReadResult)
}

// memCache is a simple unbounded map cache, adequate for a single
// analysis run (the worm analyzer never keeps a reader alive across
// unrelated boards, so unbounded growth within one run is bounded by
// the number of distinct positions actually visited).
type memCache struct {
	m map[ReadKey]ReadResult
}

func newMemCache() *memCache { return &memCache{m: make(map[ReadKey]ReadResult)} }

func (c *memCache) Get(k ReadKey) (ReadResult, bool) { r, ok := c.m[k]; return r, ok }
func (c *memCache) Put(k ReadKey, r ReadResult)      { c.m[k] = r }
