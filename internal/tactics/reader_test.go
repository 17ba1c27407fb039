package tactics

import (
	"testing"

	"github.com/hailam/wormscope/internal/board"
)

func TestCodeOrdering(t *testing.T) {
	if !(CodeNone < KoB && KoB < KoA && KoA < Win) {
		t.Fatalf("expected 0 < KO_B < KO_A < WIN, got CodeNone=%d KoB=%d KoA=%d Win=%d",
			CodeNone, KoB, KoA, Win)
	}
}

func TestMergeAttackNeverWeakens(t *testing.T) {
	// A later, weaker defense finding must never downgrade an attack
	// already recorded as WIN.
	got := mergeAttack(Win, KoA)
	if got != Win {
		t.Errorf("mergeAttack(Win, KoA) = %v, want Win", got)
	}
	got = mergeAttack(CodeNone, CodeNone)
	if got != Win {
		t.Errorf("mergeAttack(CodeNone, CodeNone) = %v, want Win (no defense found)", got)
	}
}

func TestMergeDefenseNeverWeakens(t *testing.T) {
	got := mergeDefense(Win, KoB)
	if got != Win {
		t.Errorf("mergeDefense(Win, KoB) = %v, want Win", got)
	}
	got = mergeDefense(CodeNone, CodeNone)
	if got != Win {
		t.Errorf("mergeDefense(CodeNone, CodeNone) = %v, want Win (no attack found)", got)
	}
}

func TestAttackFindsOneLibertyCapture(t *testing.T) {
	// A single white stone in atari: the reader must find the
	// capturing move and report it as a clean WIN for the attacker.
	b, err := board.ParseDiagram(`
.X.
XO.
.X.
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	white := b.Point(1, 1)
	lastLib := b.Point(1, 2)

	r := NewReader()
	code, move := r.Attack(b, white)
	if code != Win {
		t.Errorf("expected WIN attack on a one-liberty worm, got %v", code)
	}
	if move != lastLib {
		t.Errorf("expected attack point %v, got %v", lastLib, move)
	}
	if b.Depth() != 0 {
		t.Errorf("Attack must leave the board stack balanced, depth=%d", b.Depth())
	}
}

func TestAttackFindsNoneOnSafeWorm(t *testing.T) {
	// A two-stone worm in the middle of an otherwise empty board has
	// six liberties, past the reader's tactically-alive cutoff, so it
	// is reported safe without any search at all.
	b, err := board.ParseDiagram(`
.......
.......
.......
...XX..
.......
.......
.......
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	origin := b.FindOrigin(b.Point(3, 3))
	if lib := b.CountLib(origin); lib <= tacticallyAliveLib {
		t.Fatalf("test setup error: expected more than %d liberties, got %d", tacticallyAliveLib, lib)
	}

	r := NewReader()
	code, move := r.Attack(b, origin)
	if code != CodeNone {
		t.Errorf("expected no attack on a safe worm, got %v at %v", code, move)
	}
}

func TestFindDefenseOnAtariWormThatCannotEscape(t *testing.T) {
	// A single black stone in atari against three white stones: its
	// only extension still leaves it short of liberties, and white's
	// follow-up nets it. This is the familiar
	// one-liberty-edge-stone shape, reported as no defense at all.
	b, err := board.ParseDiagram(`
.O.
OX.
.O.
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	black := b.Point(1, 1)

	r := NewReader()
	code, move := r.FindDefense(b, black)
	if code != CodeNone {
		t.Errorf("expected no defense for this worm, got %v at %v", code, move)
	}
	if b.Depth() != 0 {
		t.Errorf("FindDefense must leave the board stack balanced, depth=%d", b.Depth())
	}
}

func TestDoesDefendAgreesWithFindDefense(t *testing.T) {
	b, err := board.ParseDiagram(`
.X.
XO.
.X.
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	white := b.Point(1, 1)
	onlyEscape := b.Point(1, 2)

	r := NewReader()
	if r.DoesDefend(b, onlyEscape, white) {
		t.Errorf("expected white's only liberty move to still lose to black's capture")
	}
	if code, move := r.FindDefense(b, white); code != CodeNone {
		t.Errorf("expected FindDefense to agree that white has no defense, got %v at %v", code, move)
	}
	if b.Depth() != 0 {
		t.Errorf("DoesDefend must leave the board stack balanced, depth=%d", b.Depth())
	}
}

func TestReaderCachesRepeatedReads(t *testing.T) {
	b, err := board.ParseDiagram(`
.X.
XO.
.X.
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	white := b.Point(1, 1)
	r := NewReader()

	code1, move1 := r.Attack(b, white)
	code2, move2 := r.Attack(b, white)
	if code1 != code2 || move1 != move2 {
		t.Errorf("expected identical repeated reads, got (%v,%v) then (%v,%v)", code1, move1, code2, move2)
	}
}
