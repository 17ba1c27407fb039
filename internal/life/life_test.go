package life

import (
	"testing"

	"github.com/hailam/wormscope/internal/board"
)

func TestComputeTwoEyesIsUnconditionallyAlive(t *testing.T) {
	b, err := board.ParseDiagram(`
.......
.XXXXX.
.X.X.X.
.X.X.X.
.X.X.X.
.XXXXX.
.......
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}

	flags := Compute(b, board.Black)

	ringStone := b.Point(5, 1) // part of the enclosing wall
	if flags[ringStone] != FlagAlive {
		t.Errorf("expected the two-eyed ring to be unconditionally alive")
	}
	eyeA := b.Point(3, 2)
	eyeB := b.Point(3, 4)
	if flags[eyeA] != FlagAlive || flags[eyeB] != FlagAlive {
		t.Errorf("expected both eye columns to be reported as alive territory")
	}

	// The open rim outside the ring borders only one side of the
	// chain and is never a liberty of every one of its points, so it
	// must not be reported as vital territory.
	corner := b.Point(0, 0)
	if flags[corner] == FlagAlive {
		t.Errorf("expected the unenclosed rim not to be marked alive")
	}
}

func TestComputeSingleEyeIsNotUnconditionallyAlive(t *testing.T) {
	b, err := board.ParseDiagram(`
.....
.XXX.
.X.X.
.XXX.
.....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}

	flags := Compute(b, board.Black)

	ringStone := b.Point(1, 1)
	if flags[ringStone] == FlagAlive {
		t.Errorf("a single eye must not be enough for unconditional life")
	}
}

func TestComputeIgnoresOtherColor(t *testing.T) {
	b, err := board.ParseDiagram(`
.......
.XXXXX.
.X.X.X.
.X.X.X.
.X.X.X.
.XXXXX.
.......
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}

	flags := Compute(b, board.White)
	if len(flags) != 0 {
		t.Errorf("expected no unconditional life for a color with no stones, got %d flagged points", len(flags))
	}
}
