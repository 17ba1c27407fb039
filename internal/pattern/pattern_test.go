package pattern

import (
	"bytes"
	"testing"

	"github.com/hailam/wormscope/internal/board"
)

func TestGlobalMatchPatFindsExtension(t *testing.T) {
	b, err := board.ParseDiagram(`
.....
.....
..X..
.....
.....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	db := DefaultDefensePatterns()

	var matches int
	var moves []board.Point
	GlobalMatchPat(b, board.Black, AnchorOwn, db, func(anchor board.Point, color board.Color, pat *Pattern, o Orientation) {
		matches++
		moves = append(moves, pat.MovePoint(b, anchor, o))
	})

	if matches == 0 {
		t.Fatalf("expected at least one pattern match on an open stone")
	}
	// Every one of the four cardinal neighbors of the lone stone is
	// empty, so the extend_to_open_liberty pattern should fire in (at
	// least) all four rotations, proposing all four neighbors as moves.
	center := b.Point(2, 2)
	seen := make(map[board.Point]bool)
	for _, m := range moves {
		seen[m] = true
	}
	for _, n := range []board.Point{b.North(center), b.South(center), b.East(center), b.West(center)} {
		if !seen[n] {
			t.Errorf("expected %v among proposed moves, got %v", n, moves)
		}
	}
}

func TestGlobalMatchPatRespectsAnchorKind(t *testing.T) {
	b, err := board.ParseDiagram(`
.....
.....
..X..
.....
.....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	db := DefaultDefensePatterns()

	var matches int
	GlobalMatchPat(b, board.White, AnchorOwn, db, func(board.Point, board.Color, *Pattern, Orientation) {
		matches++
	})
	if matches != 0 {
		t.Errorf("expected no matches anchored on White's stones (there are none), got %d", matches)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	original := DefaultAttackPatterns()
	var buf bytes.Buffer
	if err := original.WriteBinary(&buf); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	loaded, err := LoadBinary(&buf)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}
	if loaded.Len() != original.Len() {
		t.Fatalf("expected %d patterns after round trip, got %d", original.Len(), loaded.Len())
	}
	for i := range loaded.patterns {
		got, want := loaded.patterns[i], original.patterns[i]
		if got.Name != want.Name || got.MoveDX != want.MoveDX || got.MoveDY != want.MoveDY {
			t.Errorf("pattern %d mismatch: got %+v, want %+v", i, got, want)
		}
		if len(got.Elements) != len(want.Elements) {
			t.Fatalf("pattern %d: element count mismatch", i)
		}
		for j := range got.Elements {
			if got.Elements[j] != want.Elements[j] {
				t.Errorf("pattern %d element %d mismatch: got %+v, want %+v", i, j, got.Elements[j], want.Elements[j])
			}
		}
	}
}

func TestOrientationTransformIsClosed(t *testing.T) {
	// All eight orientations must be length-preserving permutations of
	// the 4-neighborhood (and, as a sanity check, orientation 0 is the
	// identity).
	if dx, dy := Orientation(0).transform(1, 0); dx != 1 || dy != 0 {
		t.Errorf("identity orientation changed (1,0) to (%d,%d)", dx, dy)
	}
	seen := make(map[[2]int]int)
	for o := Orientation(0); o < numOrientations; o++ {
		dx, dy := o.transform(1, 0)
		if dx*dx+dy*dy != 1 {
			t.Errorf("orientation %d did not preserve unit distance: (%d,%d)", o, dx, dy)
		}
		seen[[2]int{dx, dy}]++
	}
}
