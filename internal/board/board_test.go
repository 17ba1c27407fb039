package board

import "testing"

func TestNewBoardBounds(t *testing.T) {
	if _, err := NewBoard(0); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := NewBoard(MaxSize + 1); err == nil {
		t.Error("expected error for oversized board")
	}
	b, err := NewBoard(9)
	if err != nil {
		t.Fatalf("NewBoard(9): %v", err)
	}
	if b.StonesOnBoard() != 0 {
		t.Errorf("fresh board should have 0 stones, got %d", b.StonesOnBoard())
	}
}

func TestParseDiagramAndCoordinates(t *testing.T) {
	b, err := ParseDiagram(`
.....
.....
..X..
.....
.....
`)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	if b.Size != 5 {
		t.Fatalf("expected size 5, got %d", b.Size)
	}
	center := b.Point(2, 2)
	if b.Color(center) != Black {
		t.Fatalf("expected Black at center, got %v", b.Color(center))
	}
	if got := b.String(center); got != "C3" {
		t.Errorf("expected center coordinate C3, got %s", got)
	}
	if b.StonesOnBoard() != 1 {
		t.Errorf("expected 1 stone, got %d", b.StonesOnBoard())
	}
}

func TestCountLibSingleStone(t *testing.T) {
	b, _ := ParseDiagram(`
.....
.....
..X..
.....
.....
`)
	center := b.Point(2, 2)
	if lib := b.CountLib(center); lib != 4 {
		t.Errorf("expected 4 liberties, got %d", lib)
	}
	if size := b.CountStones(center); size != 1 {
		t.Errorf("expected size 1, got %d", size)
	}
}

func TestTryMoveActualCapture(t *testing.T) {
	b, _ := ParseDiagram(`
.X.
XO.
.X.
`)
	white := b.Point(1, 1)
	lastLib := b.Point(1, 2)
	if b.CountLib(white) != 1 {
		t.Fatalf("expected white in atari, got %d liberties", b.CountLib(white))
	}

	depthBefore := b.Depth()
	if !b.TryMove(lastLib, Black) {
		t.Fatalf("expected capturing move to succeed")
	}
	if b.Color(white) != Empty {
		t.Errorf("expected white stone captured")
	}
	if b.StonesOnBoard() != 4 {
		t.Errorf("expected 4 black stones after capture, got %d", b.StonesOnBoard())
	}

	b.PopGo()
	if b.Depth() != depthBefore {
		t.Errorf("PopGo did not restore stack depth")
	}
	if b.Color(white) != White {
		t.Errorf("PopGo did not restore captured stone")
	}
	if b.Color(lastLib) != Empty {
		t.Errorf("PopGo did not undo the played stone")
	}
}

func TestTryMoveSuicideIllegal(t *testing.T) {
	b, _ := ParseDiagram(`
.X.
X.X
.X.
`)
	center := b.Point(1, 1)
	if b.TryMove(center, White) {
		t.Errorf("expected suicide move to be illegal")
		b.PopGo()
	}
}

func TestKoForbidsImmediateRecapture(t *testing.T) {
	// Classic ko: black captures the lone white stone at (1,1), landing
	// a single black stone with exactly one liberty (the point just
	// vacated), since its other three neighbors are white stones that
	// keep liberties of their own and so are not captured.
	b, _ := ParseDiagram(`
....
.XO.
XO.O
.XO.
`)
	capturePoint := b.Point(1, 2)
	whiteAtari := b.Point(1, 1)
	if b.Color(whiteAtari) != White {
		t.Fatalf("setup mismatch")
	}
	if !b.TryMove(capturePoint, Black) {
		t.Fatalf("expected ko-starting capture to succeed")
	}
	if b.Color(whiteAtari) != Empty {
		t.Fatalf("expected white stone captured")
	}
	if !b.IsKoPoint(whiteAtari) {
		t.Fatalf("expected %v to become the ko point", whiteAtari)
	}
	if b.TryMove(whiteAtari, White) {
		t.Errorf("expected immediate ko recapture to be illegal")
		b.PopGo()
	}
	b.PopGo()
	if b.IsKoPoint(whiteAtari) {
		t.Errorf("expected ko point cleared after PopGo")
	}
}

func TestFindOriginIsRasterFirst(t *testing.T) {
	b, _ := ParseDiagram(`
.....
.....
.XX..
.XX..
.....
`)
	topLeft := b.Point(1, 1) // raster-first member (smallest row, then col) of the 2x2 block
	bottomRight := b.Point(2, 2)
	if b.FindOrigin(topLeft) != b.FindOrigin(bottomRight) {
		t.Fatalf("expected all four stones to share an origin")
	}
	if b.FindOrigin(bottomRight) != topLeft {
		t.Errorf("expected origin %v, got %v", topLeft, b.FindOrigin(bottomRight))
	}
}
