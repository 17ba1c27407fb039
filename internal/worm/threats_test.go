package worm

import (
	"testing"

	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/tactics"
)

func TestThreatsOnlyTargetEligibleWorms(t *testing.T) {
	// Whatever the reader's bounded search happens to find on this
	// board, every recorded threat must respect find_worm_threats'
	// own eligibility rule: an attack threat only ever targets a worm
	// with no existing attack, and a defense threat only ever targets
	// a worm that is attacked (WIN) but has no defense yet.
	b, err := board.ParseDiagram(`
.......
..XXX..
..X.X..
..XOX..
..XXX..
.......
.......
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	a := newTestAnalyzer(b)
	MakeWorms(a)

	for _, th := range a.Threats {
		rec := a.RecordAt(th.Origin)
		if th.Attack {
			if rec.AttackCode != tactics.CodeNone {
				t.Errorf("attack threat %+v targets a worm that already has AttackCode=%v", th, rec.AttackCode)
			}
		} else {
			if rec.AttackCode != tactics.Win || rec.DefendCode != tactics.CodeNone {
				t.Errorf("defense threat %+v targets a worm with AttackCode=%v DefendCode=%v, want Win/CodeNone",
					th, rec.AttackCode, rec.DefendCode)
			}
		}
	}
}

func TestThreatsSkipWormOutsideLibertyWindow(t *testing.T) {
	// A plus-shaped worm in open space has 8 liberties, well outside
	// find_worm_threats' "1 < liberties < 6" window, and must never be
	// the origin of an attack threat no matter what the reader finds.
	b, err := board.ParseDiagram(`
.........
.........
.........
.........
.........
....X....
...XXX...
....X....
.........
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	origin := b.FindOrigin(b.Point(2, 4))
	if lib := b.CountLib(origin); lib != 8 {
		t.Fatalf("test setup error: expected 8 liberties, got %d", lib)
	}

	a := newTestAnalyzer(b)
	MakeWorms(a)

	for _, th := range a.Threats {
		if th.Origin == origin && th.Attack {
			t.Errorf("did not expect an attack threat against an 8-liberty worm, got %+v", th)
		}
	}
}
