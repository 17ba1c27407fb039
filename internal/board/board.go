package board

import "fmt"

// MaxSize is the largest supported board side. 19 covers every board size
// played in practice; the padded grid stays well within a modest slice.
const MaxSize = 19

// Board is a fixed N×N Go board padded with a one-point off-board border.
// All mutation happens through TryMove/PopGo (see movestack.go) so that
// the tactical reader can explore hypothetical continuations and roll
// them back exactly.
type Board struct {
	Size   int // playable side, e.g. 9, 13, 19
	stride int // Size + 2, padded row length

	cells []Color

	koPoint    Point // point currently forbidden by the simple ko rule
	sideToMove Color // whose turn it nominally is; analyzer reads this, never mutates by itself

	hash  uint64 // Zobrist-style position hash
	stack []moveRecord
}

// NewBoard creates an empty board of the given side (minimum 1, maximum
// MaxSize).
func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("board: size %d out of range [1,%d]", size, MaxSize)
	}
	b := &Board{
		Size:       size,
		stride:     size + 2,
		sideToMove: Black,
		koPoint:    NoPoint,
	}
	b.cells = make([]Color, b.stride*b.stride)
	for i := range b.cells {
		b.cells[i] = OffBoard
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			b.cells[b.Point(row, col).index()] = Empty
		}
	}
	return b, nil
}

func (p Point) index() int { return int(p) }

// OnBoard reports whether p lies within the playable area.
func (b *Board) OnBoard(p Point) bool {
	if int(p) < 0 || int(p) >= len(b.cells) {
		return false
	}
	return b.cells[p] != OffBoard
}

// Color returns the occupant of p (OffBoard if p is outside the grid).
func (b *Board) Color(p Point) Color {
	if int(p) < 0 || int(p) >= len(b.cells) {
		return OffBoard
	}
	return b.cells[p]
}

// SideToMove returns whose turn the analyzer should assume when it needs
// a default color (the pipeline itself is play-agnostic: every stage
// that plays a hypothetical move says explicitly which color plays it).
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove records whose turn it is.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// KoPoint returns the point currently forbidden by the simple ko rule,
// or NoPoint if there is none.
func (b *Board) KoPoint() Point { return b.koPoint }

// IsKoPoint reports whether p is the current ko point.
func (b *Board) IsKoPoint(p Point) bool { return p != NoPoint && p == b.koPoint }

// Hash returns the current Zobrist-style position hash.
func (b *Board) Hash() uint64 { return b.hash }

// Neighbor directions, matching the C source's delta ordering: the
// cardinal compass order North, South, West, East.
func (b *Board) north(p Point) Point { return p - Point(b.stride) }
func (b *Board) south(p Point) Point { return p + Point(b.stride) }
func (b *Board) west(p Point) Point  { return p - 1 }
func (b *Board) east(p Point) Point  { return p + 1 }

// North, South, West, East expose the four cardinal neighbors; callers
// must check OnBoard before trusting the result as a playable point.
func (b *Board) North(p Point) Point { return b.north(p) }
func (b *Board) South(p Point) Point { return b.south(p) }
func (b *Board) West(p Point) Point  { return b.west(p) }
func (b *Board) East(p Point) Point  { return b.east(p) }

// Neighbors4 appends the four cardinal neighbors of p to dst and returns
// the extended slice. Off-board neighbors are included; callers filter
// with OnBoard as needed (this mirrors the C source, which always has
// four neighbors thanks to the off-board border).
func (b *Board) Neighbors4(p Point, dst []Point) []Point {
	return append(dst, b.north(p), b.south(p), b.west(p), b.east(p))
}

// Neighbors8 appends the four cardinal and four diagonal neighbors.
// Used only by the lunch finder (spec §4.10), which is 8-adjacent.
func (b *Board) Neighbors8(p Point, dst []Point) []Point {
	n, s, w, e := b.north(p), b.south(p), b.west(p), b.east(p)
	return append(dst, n, s, w, e, b.west(n), b.east(n), b.west(s), b.east(s))
}

// Points iterates every on-board point in raster (row-major) order,
// calling fn for each. Row-major order is load-bearing: §5 of the spec
// requires it for reproducible results from the refinement loop.
func (b *Board) Points(fn func(p Point)) {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			fn(b.Point(row, col))
		}
	}
}

// AllPoints returns every on-board point in raster order as a slice.
func (b *Board) AllPoints() []Point {
	out := make([]Point, 0, b.Size*b.Size)
	b.Points(func(p Point) { out = append(out, p) })
	return out
}

// StonesOnBoard counts the stones of both colors on the board.
func (b *Board) StonesOnBoard() int {
	n := 0
	b.Points(func(p Point) {
		if c := b.Color(p); c == Black || c == White {
			n++
		}
	})
	return n
}

// Clone returns a deep copy of the board, including the move stack. The
// tactical reader and the analyzer do not clone; both explore with
// TryMove/PopGo on the board itself, per spec §5.
func (b *Board) Clone() *Board {
	nb := *b
	nb.cells = append([]Color(nil), b.cells...)
	nb.stack = append([]moveRecord(nil), b.stack...)
	return &nb
}
