package worm

import "github.com/hailam/wormscope/internal/board"

// inessentialStage implements spec.md §4.11's conservative
// inessential-string test: zero genus, no second-order liberties, no
// lunch, and — once the string is imagined removed — a cavity that
// doesn't border both colors and touches fewer than three edge
// vertices. Grounded on original_source/engine/worm.c's closing loop
// in make_worms, right after find_worm_threats.
func inessentialStage(a *Analyzer) {
	b := a.Board
	a.origins(true, func(origin board.Point) {
		rec := a.RecordAt(origin)
		if rec.Genus != 0 || rec.Liberties2 != 0 || rec.Lunch != board.NoPoint {
			return
		}
		border, edge := examineCavity(b, origin)
		if border != borderGray && edge < 3 {
			a.mutate(origin, func(r *Record) { r.Inessential = true })
			a.propagateOrigin(origin)
		}
	})
}
