package worm

import "github.com/hailam/wormscope/internal/board"

// buildStage implements spec.md §4.1 (the worm builder, stage 1 of
// §2): two conceptual passes over the board — every point starts with
// origin unset (reset already did this), then a single raster-order
// walk invokes FindOrigin/FindStones/CountLib on the first unvisited
// member of each component and propagates the result to every member.
// This runs for stone strings and empty cavities alike, since
// board.FindOrigin/FindStones flood by board.Color(p) regardless of
// what that color is.
func buildStage(a *Analyzer) {
	b := a.Board
	visited := make([]bool, len(a.records))

	b.Points(func(p board.Point) {
		if visited[int(p)] {
			return
		}
		origin := b.FindOrigin(p)
		members := b.FindStones(p)
		for _, m := range members {
			visited[int(m)] = true
		}

		rec := zeroRecord()
		rec.Color = b.Color(p)
		if stoneColor(rec.Color) {
			rec.Size = len(members)
			rec.Liberties = b.CountLib(p)
		} else {
			// Empty worms (cavities) get a placeholder size of 1, per
			// spec.md §4.1 ("size: stone count or 1 for empty") — the
			// real cavity extent is never consulted through this
			// field; examine_cavity (genus.go) walks the cavity
			// itself when that matters.
			rec.Size = 1
		}

		a.setOrigin(origin, rec)
		a.propagateOrigin(origin)
	})
}
