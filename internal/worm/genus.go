package worm

import "github.com/hailam/wormscope/internal/board"

// genusStage implements spec.md §4.7: genus is the number of connected
// components of a string's complement minus one, approximating its eye
// count. Grounded on original_source/engine/worm.c's genus/
// markcomponent pair, reimplemented with an explicit worklist (spec.md
// §9's stack-depth-safety recommendation) in place of the source's
// recursion.
func genusStage(a *Analyzer) {
	b := a.Board
	a.origins(true, func(origin board.Point) {
		gen := genusOf(b, origin)
		a.mutate(origin, func(r *Record) { r.Genus = gen })
		a.propagateOrigin(origin)
	})
}

// genusOf counts the connected components of the complement of the
// string at origin (every point that is empty, or a stone belonging
// to a different string), minus one.
func genusOf(b *board.Board, origin board.Point) int {
	visited := make(map[board.Point]bool)
	gen := -1
	b.Points(func(p board.Point) {
		if visited[p] || (b.Color(p) != board.Empty && b.FindOrigin(p) == origin) {
			return
		}
		markComplement(b, origin, p, visited)
		gen++
	})
	return gen
}

// markComplement floods the complement component containing start,
// iteratively, matching original_source/engine/worm.c's markcomponent.
func markComplement(b *board.Board, origin, start board.Point, visited map[board.Point]bool) {
	stack := []board.Point{start}
	visited[start] = true
	var nbrs [4]board.Point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ap := range b.Neighbors4(p, nbrs[:0]) {
			if b.OnBoard(ap) && !visited[ap] && (b.Color(ap) == board.Empty || b.FindOrigin(ap) != origin) {
				visited[ap] = true
				stack = append(stack, ap)
			}
		}
	}
}

// cavityBorder classifies the border color seen when flooding the
// cavity around removed (the companion routine to genusOf, but here
// treating removed's own string as transparent rather than opaque).
type cavityBorder int

const (
	borderGray cavityBorder = iota
	borderBlack
	borderWhite
)

// examineCavity implements spec.md §4.11's helper (original_source's
// examine_cavity/cavity_recurse): starting at pos, flood every point
// that is empty or belongs to pos's own string, tracking which enemy
// colors border the region and how many of its empty points sit on the
// board edge (stones of pos's own string are not counted).
func examineCavity(b *board.Board, pos board.Point) (border cavityBorder, edge int) {
	origin := board.NoPoint
	if b.Color(pos) != board.Empty {
		origin = b.FindOrigin(pos)
	}

	visited := make(map[board.Point]bool)
	sawBlack, sawWhite := false, false
	stack := []board.Point{pos}
	visited[pos] = true
	var nbrs [4]board.Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.Color(p) == board.Empty && onEdge(b, p) {
			edge++
		}

		for _, ap := range b.Neighbors4(p, nbrs[:0]) {
			if !b.OnBoard(ap) || visited[ap] {
				continue
			}
			regionMember := b.Color(ap) == board.Empty || (origin != board.NoPoint && b.FindOrigin(ap) == origin)
			if !regionMember {
				switch b.Color(ap) {
				case board.Black:
					sawBlack = true
				case board.White:
					sawWhite = true
				}
				continue
			}
			visited[ap] = true
			stack = append(stack, ap)
		}
	}

	switch {
	case sawBlack && sawWhite:
		return borderGray, edge
	case sawBlack:
		return borderBlack, edge
	case sawWhite:
		return borderWhite, edge
	default:
		return borderGray, edge
	}
}

func onEdge(b *board.Board, p board.Point) bool {
	return !b.OnBoard(b.North(p)) || !b.OnBoard(b.South(p)) || !b.OnBoard(b.West(p)) || !b.OnBoard(b.East(p))
}
