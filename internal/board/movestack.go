package board

// moveRecord captures everything needed to undo one speculative move:
// the stone placed, any opposing strings it captured, and the board's
// ko state immediately before the move. This is the Go-board analogue
// of the teacher's board.UndoInfo, and together with TryMove/PopGo it
// plays the role spec.md §6 assigns to the external trymove/popgo pair.
type moveRecord struct {
	placed    Point
	color     Color
	captured  []Point
	prevKo    Point
	prevHash  uint64
	prevSide  Color
	pass      bool
}

// Depth returns how many speculative moves are currently on the stack.
// The spec requires this to be 0 at every pipeline stage boundary
// (§5, §7); callers assert Depth() == 0 rather than relying on a panic
// from PopGo underflowing.
func (b *Board) Depth() int { return len(b.stack) }

// TryMove attempts to play a stone of the given color at p, pushing a
// speculative move onto the stack on success. It returns false without
// mutating anything if the move is illegal: off board, occupied, the
// simple-ko point, or suicide (placing a stone whose string has no
// liberties after captures are resolved).
//
// Passing is represented by p == NoPoint: it still pushes a move record
// (with no board change beyond clearing the ko point) so PopGo stays
// symmetric.
func (b *Board) TryMove(p Point, color Color) bool {
	if p == NoPoint {
		b.stack = append(b.stack, moveRecord{
			placed: NoPoint, color: color, prevKo: b.koPoint,
			prevHash: b.hash, prevSide: b.sideToMove, pass: true,
		})
		b.koPoint = NoPoint
		b.sideToMove = color.Other()
		return true
	}

	if !b.OnBoard(p) || b.Color(p) != Empty {
		return false
	}
	if b.IsKoPoint(p) {
		return false
	}

	rec := moveRecord{placed: p, color: color, prevKo: b.koPoint, prevHash: b.hash, prevSide: b.sideToMove}

	b.cells[p] = color
	b.hash ^= zobristKey(color, p)

	other := color.Other()
	var nbrs [4]Point
	seenOrigin := make(map[Point]bool, 4)
	for _, n := range b.neighbors4Into(p, nbrs[:0]) {
		if b.Color(n) != other {
			continue
		}
		origin := b.FindOrigin(n)
		if seenOrigin[origin] {
			continue
		}
		seenOrigin[origin] = true
		if b.CountLib(origin) == 0 {
			stones := b.FindStones(origin)
			for _, s := range stones {
				b.cells[s] = Empty
				b.hash ^= zobristKey(other, s)
				rec.captured = append(rec.captured, s)
			}
		}
	}

	if b.CountLib(p) == 0 {
		// Suicide: undo the placement and any captures, then fail.
		for _, s := range rec.captured {
			b.cells[s] = other
			b.hash ^= zobristKey(other, s)
		}
		b.cells[p] = Empty
		b.hash ^= zobristKey(color, p)
		return false
	}

	b.koPoint = NoPoint
	if len(rec.captured) == 1 && b.CountStones(p) == 1 && b.CountLib(p) == 1 {
		b.koPoint = rec.captured[0]
	}
	b.sideToMove = other
	b.stack = append(b.stack, rec)
	return true
}

// PopGo undoes the most recent speculative move. It panics if the stack
// is empty — an unbalanced trymove/popgo pair is a fatal internal error
// per spec §7, not a recoverable condition.
func (b *Board) PopGo() {
	if len(b.stack) == 0 {
		panic("board: PopGo called with empty move stack")
	}
	rec := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if !rec.pass {
		for _, s := range rec.captured {
			b.cells[s] = rec.color.Other()
		}
		b.cells[rec.placed] = Empty
	}
	b.koPoint = rec.prevKo
	b.hash = rec.prevHash
	b.sideToMove = rec.prevSide
}

// WithMove plays p as color, runs fn, and guarantees PopGo runs even if
// fn panics — the scoped "speculative move" operation spec §9's design
// notes recommend in place of manually paired trymove/popgo. It reports
// whether the move was legal; fn is not called if not.
func (b *Board) WithMove(p Point, color Color, fn func()) (played bool) {
	if !b.TryMove(p, color) {
		return false
	}
	defer b.PopGo()
	fn()
	return true
}
