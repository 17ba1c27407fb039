package board

// This file implements the flood-fill queries the spec's external
// interfaces name directly: FindOrigin, FindStones, CountLib, FindLib,
// CountStones, LibertyOfString. All use an explicit worklist rather than
// recursion — spec §9 flags the C source's recursive floods as a
// stack-depth risk on 19×19 and recommends an iterative worklist.

// stringWalk flood-fills the same-color string containing origin using
// an explicit stack, calling visit for every member (origin included).
func (b *Board) stringWalk(origin Point, visit func(p Point)) {
	color := b.Color(origin)
	seen := make(map[Point]bool, 8)
	stack := []Point{origin}
	seen[origin] = true
	var nbrs [4]Point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(p)
		ns := b.neighbors4Into(p, nbrs[:0])
		for _, n := range ns {
			if !seen[n] && b.Color(n) == color {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
}

func (b *Board) neighbors4Into(p Point, dst []Point) []Point {
	return append(dst, b.north(p), b.south(p), b.west(p), b.east(p))
}

// FindOrigin returns the canonical (raster-first, i.e. numerically
// smallest grid index) point of the string containing p. p must be a
// stone.
func (b *Board) FindOrigin(p Point) Point {
	origin := p
	b.stringWalk(p, func(q Point) {
		if q < origin {
			origin = q
		}
	})
	return origin
}

// FindStones returns every point belonging to the same string as p, in
// no particular order. p must be a stone.
func (b *Board) FindStones(p Point) []Point {
	var out []Point
	b.stringWalk(p, func(q Point) { out = append(out, q) })
	return out
}

// CountStones returns the size of the string containing p.
func (b *Board) CountStones(p Point) int {
	n := 0
	b.stringWalk(p, func(Point) { n++ })
	return n
}

// FindLib appends the liberties of the string containing p to dst and
// returns the extended slice. Each liberty appears once.
func (b *Board) FindLib(p Point, dst []Point) []Point {
	seen := make(map[Point]bool, 8)
	var nbrs [4]Point
	b.stringWalk(p, func(q Point) {
		for _, n := range b.neighbors4Into(q, nbrs[:0]) {
			if b.Color(n) == Empty && !seen[n] {
				seen[n] = true
				dst = append(dst, n)
			}
		}
	})
	return dst
}

// CountLib returns the liberty count of the string containing p.
func (b *Board) CountLib(p Point) int {
	return len(b.FindLib(p, nil))
}

// LibertyOfString reports whether lib is an empty point adjacent to the
// string whose canonical origin is origin.
func (b *Board) LibertyOfString(lib, origin Point) bool {
	if b.Color(lib) != Empty {
		return false
	}
	var nbrs [4]Point
	for _, n := range b.neighbors4Into(lib, nbrs[:0]) {
		if b.Color(n) != Empty && b.Color(n) != OffBoard && b.FindOrigin(n) == origin {
			return true
		}
	}
	return false
}
