package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/tactics"
)

// threatStage implements spec.md §4.9 (find_worm_threats): for every
// worm still safe from direct attack, probe its first- and
// second-order liberties for a move that threatens to capture it; for
// every worm that is attacked but has no defense, probe the same
// liberties for a move that threatens to save it. Findings accumulate
// in a.Threats rather than mutating any Record field. The small-semeai
// solver (a.cfg.Semeai) is intentionally never consulted here — per
// spec.md §4.9's delegation note, semeai resolution is a distinct
// concern plugged in by the caller, not part of the threat finder.
func threatStage(a *Analyzer) {
	b := a.Board
	r := a.cfg.Reader

	a.origins(true, func(origin board.Point) {
		rec := a.RecordAt(origin)
		color := rec.Color
		other := color.Other()

		if rec.AttackCode == tactics.CodeNone {
			findAttackThreats(a, b, r, origin, other, rec.Liberties)
		}

		rec = a.RecordAt(origin)
		if rec.AttackCode == tactics.Win && rec.DefendCode == tactics.CodeNone {
			findDefenseThreats(a, b, r, origin, color, other)
		}
	})
}

// findAttackThreats mirrors find_worm_threats' first block: only
// worms with between 2 and 5 liberties are probed, an optimization
// preserved from the source rather than re-derived.
func findAttackThreats(a *Analyzer, b *board.Board, r *tactics.Reader, origin board.Point, other board.Color, liberties int) {
	if liberties <= 1 || liberties >= 6 {
		return
	}
	libs := b.FindLib(origin, nil)
	for _, aa := range libs {
		if b.TryMove(aa, other) {
			if code, _ := r.Attack(b, origin); code == tactics.Win {
				a.addAttackThreat(origin, aa)
			}
			b.PopGo()
		}

		var nbrs [4]board.Point
		for _, bb := range b.Neighbors4(aa, nbrs[:0]) {
			if !b.OnBoard(bb) || b.Color(bb) != board.Empty || b.LibertyOfString(bb, origin) {
				continue
			}
			if b.TryMove(bb, other) {
				if code, _ := r.Attack(b, origin); code == tactics.Win {
					a.addAttackThreat(origin, bb)
				}
				b.PopGo()
			}
		}
	}
}

// findDefenseThreats mirrors find_worm_threats' second block. The
// second-order probe plays `other`, not `color` — an asymmetry present
// verbatim in original_source/engine/worm.c and preserved here rather
// than corrected.
func findDefenseThreats(a *Analyzer, b *board.Board, r *tactics.Reader, origin board.Point, color, other board.Color) {
	libs := b.FindLib(origin, nil)
	for _, aa := range libs {
		if b.TryMove(aa, color) {
			if code, _ := r.Attack(b, origin); code == tactics.Win {
				if d, _ := r.FindDefense(b, origin); d == tactics.Win {
					a.addDefenseThreat(origin, aa)
				}
			}
			b.PopGo()
		}

		var nbrs [4]board.Point
		for _, bb := range b.Neighbors4(aa, nbrs[:0]) {
			if !b.OnBoard(bb) || b.Color(bb) != board.Empty || b.LibertyOfString(bb, origin) {
				continue
			}
			if b.TryMove(bb, other) {
				if code, _ := r.Attack(b, origin); code == tactics.Win {
					if d, _ := r.FindDefense(b, origin); d == tactics.Win {
						a.addDefenseThreat(origin, bb)
					}
				}
				b.PopGo()
			}
		}
	}
}
