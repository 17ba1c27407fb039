package board

import "fmt"

// Point is an index into the padded board grid. The grid has a one-point
// off-board border on every side so that neighbor arithmetic never needs
// a bounds check; NoPoint is -1, which lies outside the grid altogether
// (Board.Color reports OffBoard for it).
type Point int

// NoPoint represents an absent point (no attack point, no defense point,
// no lunch, ...).
const NoPoint Point = -1

// Row and Col return the 0-indexed row and column of the point within
// the playable N×N area. Only meaningful for on-board points.
func (b *Board) Row(p Point) int { return int(p)/b.stride - 1 }
func (b *Board) Col(p Point) int { return int(p)%b.stride - 1 }

// Point builds the grid index for a 0-indexed (row, col).
func (b *Board) Point(row, col int) Point {
	return Point((row+1)*b.stride + (col + 1))
}

// coordLetters skips 'I', matching standard Go board notation (A-T).
const coordLetters = "ABCDEFGHJKLMNOPQRST"

// String returns standard Go coordinates, e.g. "Q16", or "-" for NoPoint.
func (b *Board) String(p Point) string {
	if p == NoPoint || !b.OnBoard(p) {
		return "-"
	}
	row, col := b.Row(p), b.Col(p)
	return fmt.Sprintf("%c%d", coordLetters[col], b.Size-row)
}
