package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/tactics"
)

// lunchStage implements spec.md §4.10 (find_lunch): for every worm,
// look 8-adjacently for an enemy worm that is attacked and not sitting
// on a ko point (its defense code is not consulted) — preferring the
// juiciest candidate (highest cutstone, then fewest liberties).
// The caller-side restriction from original_source/engine/worm.c's
// make_worms (only WIN or KO_A attacked lunches are actually assigned)
// is applied here rather than inside findLunch itself, matching the
// source's own split between the helper and its call site.
func lunchStage(a *Analyzer) {
	b := a.Board
	a.origins(true, func(origin board.Point) {
		lunch := findLunch(a, b, origin)
		if lunch != board.NoPoint {
			code := a.RecordAt(lunch).AttackCode
			if code != tactics.Win && code != tactics.KoA {
				lunch = board.NoPoint
			}
		}
		a.mutate(origin, func(r *Record) { r.Lunch = lunch })
		a.propagateOrigin(origin)
	})
}

// findLunch scans every enemy stone 8-adjacent to str's worm and
// returns the origin of the juiciest one with a live attack.
func findLunch(a *Analyzer, b *board.Board, str board.Point) board.Point {
	enemy := b.Color(str).Other()
	lunch := board.NoPoint
	var nbrs [8]board.Point

	b.Points(func(pos board.Point) {
		if b.Color(pos) != enemy {
			return
		}
		adjacent := false
		for _, apos := range b.Neighbors8(pos, nbrs[:0]) {
			if b.OnBoard(apos) && a.IsSameWorm(apos, str) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return
		}
		rec := a.RecordAt(pos)
		if rec.AttackCode == tactics.CodeNone || b.IsKoPoint(pos) {
			return
		}
		if lunch == board.NoPoint {
			lunch = rec.Origin
			return
		}
		cur := a.RecordAt(lunch)
		if rec.Cutstone > cur.Cutstone || (rec.Cutstone == cur.Cutstone && rec.Liberties < cur.Liberties) {
			lunch = rec.Origin
		}
	})
	return lunch
}
