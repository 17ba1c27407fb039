package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/tactics"
)

// neighborDefenseStage implements spec.md §4.9: for every pair of
// 4-adjacent stones of different worms and opposite colors where both
// sides are attackable but one has no defense, test whether the
// other's attack point also defends the undefendable one. Applied
// south-neighbors first, then east-neighbors — the literal order
// original_source/engine/worm.c uses, called out in SPEC_FULL.md §C.1
// since swapping it would still "look" 4-adjacent-complete but isn't
// what the source does.
//
// Per spec.md §7 and the FIXME comments preserved in the source, this
// never checks the ko relationship between the two worms before
// crediting a WIN defense — a known imprecision the spec keeps as-is
// rather than guessing a correction.
func neighborDefenseStage(a *Analyzer) {
	b := a.Board
	touched := make(map[board.Point]bool)

	for row := 0; row < b.Size-1; row++ {
		for col := 0; col < b.Size; col++ {
			patchPair(a, b, b.Point(row, col), b.Point(row+1, col), touched)
		}
	}
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size-1; col++ {
			patchPair(a, b, b.Point(row, col), b.Point(row, col+1), touched)
		}
	}

	for origin := range touched {
		a.propagateOrigin(origin)
	}
}

// patchPair applies the cross-defense test to one adjacent pair (p,
// q), in both directions.
func patchPair(a *Analyzer, b *board.Board, p, q board.Point, touched map[board.Point]bool) {
	if a.IsSameWorm(p, q) || b.Color(p) == board.Empty || b.Color(q) == board.Empty {
		return
	}
	recP := a.RecordAt(p)
	recQ := a.RecordAt(q)
	if recP.AttackCode == tactics.CodeNone || recQ.AttackCode == tactics.CodeNone {
		return
	}

	if recP.DefendCode == tactics.CodeNone && doesDefend(a, b, recQ.AttackPoint, recP.Origin) {
		a.setDefense(recP.Origin, tactics.Win, recQ.AttackPoint)
		touched[recP.Origin] = true
	}
	recQ = a.RecordAt(q)
	if recQ.DefendCode == tactics.CodeNone && doesDefend(a, b, recP.AttackPoint, recQ.Origin) {
		a.setDefense(recQ.Origin, tactics.Win, recP.AttackPoint)
		touched[recQ.Origin] = true
	}
}

func doesDefend(a *Analyzer, b *board.Board, move, origin board.Point) bool {
	if move == board.NoPoint {
		return false
	}
	return a.cfg.Reader.DoesDefend(b, move, origin)
}
