package worm

import (
	"testing"

	"github.com/hailam/wormscope/internal/board"
)

func TestExamineCavitySingleColorBorder(t *testing.T) {
	// Removing the lone black stone leaves a single-point cavity fully
	// enclosed by white.
	b, err := board.ParseDiagram(`
.....
.OOO.
.OXO.
.OOO.
.....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	border, _ := examineCavity(b, b.Point(2, 2))
	if border != borderWhite {
		t.Errorf("expected a white-only border, got %v", border)
	}
}

func TestExamineCavityGrayBorderWhenBothColorsTouch(t *testing.T) {
	b, err := board.ParseDiagram(`
....O
.....
..X..
.....
X....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	// The cavity around the lone X at (2,2) spans the rest of the
	// open board, reaching both the separate black stone at (0,0) and
	// the white stone at (4,4).
	border, _ := examineCavity(b, b.Point(2, 2))
	if border != borderGray {
		t.Errorf("expected a gray (mixed) border, got %v", border)
	}
}
