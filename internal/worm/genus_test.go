package worm

import (
	"testing"

	"github.com/hailam/wormscope/internal/board"
)

func TestGenusOfLoneStoneInOpenIsZero(t *testing.T) {
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
	if g := genusOf(b, b.Point(2, 2)); g != 0 {
		t.Errorf("expected genus 0 for a lone stone (complement is a single region), got %d", g)
	}
}

func TestGenusOfSingleEyeRingIsOne(t *testing.T) {
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
	origin := b.FindOrigin(b.Point(1, 1))
	if g := genusOf(b, origin); g != 1 {
		t.Errorf("expected genus 1 for a single-eye ring (interior eye + exterior), got %d", g)
	}
}

func TestGenusOfTwoEyeRingIsTwo(t *testing.T) {
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
	origin := b.FindOrigin(b.Point(1, 1))
	if g := genusOf(b, origin); g != 2 {
		t.Errorf("expected genus 2 for a two-eye ring, got %d", g)
	}
}
