// Package pattern implements the worm analyzer's pattern matcher: the
// external global_matchpat(callback, anchor_kind, db, ...) collaborator
// spec.md §4.4(b)/(d) drives with attpat_db and defpat_db. A pattern is
// a small relative grid of content requirements anchored on a stone,
// matched in all eight board symmetries, with an optional predicate
// standing in for the source's helper/autohelper/constraint machinery.
package pattern

import "github.com/hailam/wormscope/internal/board"

// Content is a single pattern cell's requirement, using the source's
// own character vocabulary.
type Content byte

const (
	Any       Content = '*' // anything, including off-board
	EmptyC    Content = '.' // empty point
	OwnC      Content = 'X' // the anchor's own color
	EnemyC    Content = 'O' // the anchor's opponent
	NotOwnC   Content = 'o' // opponent or empty
	NotEnemyC Content = 'x' // own or empty
	OffBoardC Content = '#' // off the edge of the board
)

func (ct Content) matches(c, own, enemy board.Color) bool {
	switch ct {
	case Any:
		return true
	case EmptyC:
		return c == board.Empty
	case OwnC:
		return c == own
	case EnemyC:
		return c == enemy
	case NotOwnC:
		return c == enemy || c == board.Empty
	case NotEnemyC:
		return c == own || c == board.Empty
	case OffBoardC:
		return c == board.OffBoard
	default:
		return false
	}
}

// Element is one relative cell of a pattern, offset (DX, DY) from the
// anchor, with its required content.
type Element struct {
	DX, DY int
	Att    Content
}

// Helper stands in for the source's helper/autohelper functions and
// constraint flag, collapsed into a single predicate evaluated after
// the grid matches: it may reject a geometric match (e.g. a cutstone
// shape that only applies with a particular liberty count).
type Helper func(b *board.Board, anchor board.Point, color board.Color, o Orientation) bool

// Pattern is one recorded shape: its grid elements, the move it
// proposes relative to the anchor, and an optional Helper.
type Pattern struct {
	Name     string
	Elements []Element
	MoveDX   int
	MoveDY   int
	Check    Helper
}

func (pat *Pattern) matchesAt(b *board.Board, anchor board.Point, color board.Color, o Orientation) bool {
	row, col := b.Row(anchor), b.Col(anchor)
	other := color.Other()
	for _, e := range pat.Elements {
		dx, dy := o.transform(e.DX, e.DY)
		c := b.Color(b.Point(row+dy, col+dx))
		if !e.Att.matches(c, color, other) {
			return false
		}
	}
	if pat.Check != nil && !pat.Check(b, anchor, color, o) {
		return false
	}
	return true
}

// MovePoint returns the board point this pattern proposes, given the
// anchor and the orientation under which it matched.
func (pat *Pattern) MovePoint(b *board.Board, anchor board.Point, o Orientation) board.Point {
	row, col := b.Row(anchor), b.Col(anchor)
	dx, dy := o.transform(pat.MoveDX, pat.MoveDY)
	return b.Point(row+dy, col+dx)
}

// AnchorKind selects which color a pattern anchors on: the analyzer's
// own stones or the opponent's.
type AnchorKind int

const (
	AnchorOwn AnchorKind = iota
	AnchorEnemy
)

// Callback receives one match: the anchor, the color the search was
// run for (not necessarily the anchor's own color — see AnchorKind),
// the pattern, and the orientation it matched under.
type Callback func(anchor board.Point, color board.Color, pat *Pattern, o Orientation)

// GlobalMatchPat scans every board point, and for each one whose color
// matches anchorKind (relative to color), tries every pattern in db
// under every orientation, invoking cb for each match. This is the Go
// equivalent of the source's global_matchpat driver loop.
func GlobalMatchPat(b *board.Board, color board.Color, kind AnchorKind, db *DB, cb Callback) {
	anchorColor := color
	if kind == AnchorEnemy {
		anchorColor = color.Other()
	}
	b.Points(func(p board.Point) {
		if b.Color(p) != anchorColor {
			return
		}
		for i := range db.patterns {
			pat := &db.patterns[i]
			for o := Orientation(0); o < numOrientations; o++ {
				if pat.matchesAt(b, p, color, o) {
					cb(p, color, pat, o)
				}
			}
		}
	})
}
