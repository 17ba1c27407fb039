package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/pattern"
	"github.com/hailam/wormscope/internal/tactics"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadPatternDB(t *testing.T) {
	s := openTestStorage(t)

	original := pattern.DefaultAttackPatterns()
	if err := s.SavePatternDB("attack", original); err != nil {
		t.Fatalf("SavePatternDB: %v", err)
	}

	loaded, err := s.LoadPatternDB("attack")
	if err != nil {
		t.Fatalf("LoadPatternDB: %v", err)
	}
	if loaded.Len() != original.Len() {
		t.Errorf("expected %d patterns, got %d", original.Len(), loaded.Len())
	}
}

func TestLoadPatternDBMissing(t *testing.T) {
	s := openTestStorage(t)
	if _, err := s.LoadPatternDB("does-not-exist"); err == nil {
		t.Errorf("expected an error loading a pattern db that was never saved")
	}
}

func TestReadCacheRoundTrip(t *testing.T) {
	s := openTestStorage(t)
	cache := s.NewReadCache()

	key := tactics.ReadKey{Hash: 0xABCDEF, Origin: board.Point(42), Depth: 3, Kind: tactics.KindAttack}
	want := tactics.ReadResult{Code: tactics.KoA, Move: board.Point(17)}

	if _, ok := cache.Get(key); ok {
		t.Fatalf("expected a miss before any Put")
	}
	cache.Put(key, want)
	got, ok := cache.Get(key)
	if !ok {
		t.Fatalf("expected a hit after Put")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadCacheRoundTripWithNoPoint(t *testing.T) {
	s := openTestStorage(t)
	cache := s.NewReadCache()

	key := tactics.ReadKey{Hash: 1, Origin: board.NoPoint, Depth: 1, Kind: tactics.KindDefense}
	want := tactics.ReadResult{Code: tactics.CodeNone, Move: board.NoPoint}

	cache.Put(key, want)
	got, ok := cache.Get(key)
	if !ok || got != want {
		t.Errorf("expected NoPoint to round-trip, got %+v ok=%v", got, ok)
	}
}
