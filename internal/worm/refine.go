package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/tactics"
)

// refinementStage implements spec.md §4.5, the refinement loop: for
// every worm's known attack and defense point (each tried at most
// once across the whole stage), speculatively play it, widen the
// reader's horizon to match, and check every *other* worm for a
// relocated attack or defense. This is grounded directly on
// original_source/engine/worm.c's find_worm_attacks_and_defenses
// relocation block (the two nearly-identical loops over attack_point
// and defense_point), including its asymmetric verification move
// (Open Question in spec.md §9.3: the defense-branch verification
// plays the candidate's own color, which happens to equal the local
// variable named "other" in that branch — preserved as specified).
func refinementStage(a *Analyzer) {
	b := a.Board
	r := a.cfg.Reader
	touched := make(map[board.Point]bool)

	a.origins(true, func(pos board.Point) {
		rec := a.RecordAt(pos)
		color := rec.Color
		other := color.Other()

		if aa := rec.AttackPoint; aa != board.NoPoint && !a.triedAttack[aa] {
			a.triedAttack[aa] = true
			if b.TryMove(aa, other) {
				r.IncreaseDepth()
				attackBranch(a, b, r, pos, color, other, aa, touched)
				r.DecreaseDepth()
				b.PopGo()
			}
		}

		rec = a.RecordAt(pos)
		if dd := rec.DefensePoint; dd != board.NoPoint && !a.triedDefense[dd] {
			a.triedDefense[dd] = true
			if b.TryMove(dd, color) {
				r.IncreaseDepth()
				defenseBranch(a, b, r, pos, color, other, dd, touched)
				r.DecreaseDepth()
				b.PopGo()
			}
		}
	})

	for origin := range touched {
		a.propagateOrigin(origin)
	}
}

// attackBranch runs after aa has been played by other as an attack on
// pos. Case A: an ally worm pos2 loses its last defense and aa
// relocates in as its attack point. Case B: an enemy worm pos2 that
// was attackable turns out no longer attackable, and aa becomes its
// defense.
func attackBranch(a *Analyzer, b *board.Board, r *tactics.Reader, pos board.Point, color, other board.Color, aa board.Point, touched map[board.Point]bool) {
	a.origins(true, func(pos2 board.Point) {
		if pos2 == pos || !stoneColor(b.Color(pos2)) {
			return
		}
		rec2 := a.RecordAt(pos2)
		switch rec2.Color {
		case color:
			if rec2.AttackCode == tactics.CodeNone || rec2.DefendCode == tactics.CodeNone {
				return
			}
			if code, _ := r.FindDefense(b, pos2); code != tactics.CodeNone {
				return
			}
			if !confirmOldDefenseStillWorks(b, r, pos2, rec2.DefensePoint, color) {
				a.relocateAttackPoint(pos2, aa)
				touched[pos2] = true
			}
		case other:
			if rec2.AttackCode == tactics.CodeNone {
				return
			}
			if code, _ := r.Attack(b, pos2); code == tactics.CodeNone {
				a.setDefense(pos2, tactics.Win, aa)
				touched[pos2] = true
			}
		}
	})
}

// defenseBranch runs after dd has been played by color as a defense
// of pos. Case D (the enemy-side mirror of Case A): an enemy worm
// pos2 loses its last defense and dd relocates in as its attack
// point. Case C (the mirror of Case B): an ally worm pos2 that was
// attackable turns out no longer attackable, and dd becomes its
// defense.
func defenseBranch(a *Analyzer, b *board.Board, r *tactics.Reader, pos board.Point, color, other board.Color, dd board.Point, touched map[board.Point]bool) {
	a.origins(true, func(pos2 board.Point) {
		if pos2 == pos || !stoneColor(b.Color(pos2)) {
			return
		}
		rec2 := a.RecordAt(pos2)
		switch rec2.Color {
		case other:
			if rec2.AttackCode == tactics.CodeNone || rec2.DefendCode == tactics.CodeNone {
				return
			}
			if code, _ := r.FindDefense(b, pos2); code != tactics.CodeNone {
				return
			}
			// Per the source (and spec.md §9's flagged Open
			// Question): the verification move is played as
			// pos2's own color, which in this branch is `other`.
			if !confirmOldDefenseStillWorks(b, r, pos2, rec2.DefensePoint, other) {
				a.relocateAttackPoint(pos2, dd)
				touched[pos2] = true
			}
		case color:
			if rec2.AttackCode == tactics.CodeNone {
				return
			}
			if code, _ := r.Attack(b, pos2); code == tactics.CodeNone {
				a.setDefense(pos2, tactics.Win, dd)
				touched[pos2] = true
			}
		}
	})
}

// confirmOldDefenseStillWorks replays pos2's previously recorded
// defense point (if any) as verifyColor and asks whether pos2 is
// still safe. It reports true when the old defense still holds, in
// which case the relocation the caller was about to perform is
// unnecessary and must be skipped — the defender already has an
// answer that covers both worms.
func confirmOldDefenseStillWorks(b *board.Board, r *tactics.Reader, pos2 board.Point, oldDefense board.Point, verifyColor board.Color) bool {
	if oldDefense == board.NoPoint {
		return false
	}
	if !b.TryMove(oldDefense, verifyColor) {
		return false
	}
	defer b.PopGo()
	code, _ := r.Attack(b, pos2)
	return code == tactics.CodeNone
}
