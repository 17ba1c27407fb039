package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/pattern"
	"github.com/hailam/wormscope/internal/tactics"
)

// tacticalStage implements spec.md §4.4's five phases: a direct reader
// call per worm, attack-pattern-guided probes, a find_defense pass
// with an out-of-liberty probe fallback, defense-pattern-guided
// probes, and a liberty-by-liberty sweep. Every speculative move is
// played and popped within the phase that tries it; the board is
// unchanged on return.
func tacticalStage(a *Analyzer) {
	tacticalDirectAttack(a)
	tacticalAttackPatterns(a)
	tacticalFindDefense(a)
	tacticalDefensePatterns(a)
	tacticalLibertyProbe(a)
}

// (a) direct reader call per worm origin.
func tacticalDirectAttack(a *Analyzer) {
	b := a.Board
	r := a.cfg.Reader
	a.origins(true, func(origin board.Point) {
		code, move := r.Attack(b, origin)
		if code != tactics.CodeNone {
			a.addAttackMove(origin, code, move)
		}
	})
}

// (b) attack pattern matcher: a candidate move anchored on an enemy
// stone, verified by actually playing it and consulting find_defense.
func tacticalAttackPatterns(a *Analyzer) {
	if a.cfg.AttackDB == nil {
		return
	}
	b := a.Board
	r := a.cfg.Reader
	for _, attacker := range [2]board.Color{board.Black, board.White} {
		pattern.GlobalMatchPat(b, attacker, pattern.AnchorEnemy, a.cfg.AttackDB,
			func(anchor board.Point, mcolor board.Color, pat *pattern.Pattern, o pattern.Orientation) {
				target := b.FindOrigin(anchor)
				rec := a.RecordAt(target)
				if rec.Liberties > 4 {
					return // alive enough that the pattern guess isn't worth probing
				}
				move := pat.MovePoint(b, anchor, o)
				if !b.OnBoard(move) || b.Color(move) != board.Empty {
					return
				}
				if rec.AttackCode != tactics.CodeNone && rec.AttackPoint == move {
					return // already registered
				}
				if !b.TryMove(move, mcolor) {
					return
				}
				defer b.PopGo()
				if b.Color(target) == board.Empty {
					a.addAttackMove(target, tactics.Win, move)
					return
				}
				d, _ := r.FindDefense(b, target)
				merged := tactics.MergeAttack(rec.AttackCode, d)
				if merged > rec.AttackCode {
					a.addAttackMove(target, merged, move)
				}
			})
	}
}

// (c) find_defense for every attacked worm, with the out-of-liberty
// probe fallback when no defense was found directly.
func tacticalFindDefense(a *Analyzer) {
	b := a.Board
	r := a.cfg.Reader
	a.origins(true, func(origin board.Point) {
		rec := a.RecordAt(origin)
		if rec.AttackCode == tactics.CodeNone {
			return
		}
		code, move := r.FindDefense(b, origin)
		if code != tactics.CodeNone {
			a.addDefenseMove(origin, code, move)
		}

		rec = a.RecordAt(origin)
		if rec.DefendCode != tactics.CodeNone {
			return
		}
		if rec.AttackPoint == board.NoPoint || b.LibertyOfString(rec.AttackPoint, origin) {
			return
		}
		if !b.TryMove(rec.AttackPoint, rec.Color) {
			return
		}
		residual, _ := r.Attack(b, origin)
		b.PopGo()
		if derived := deriveDefenseFromResidual(residual); derived != tactics.CodeNone {
			a.addDefenseMove(origin, derived, rec.AttackPoint)
		}
	})
}

// deriveDefenseFromResidual maps the attack code still standing after
// playing a non-adjacent candidate defense point to the defense code
// it implies (spec.md §4.4(c)): a fully quashed attack is a clean
// defense, a surviving ko attack is the complementary ko defense.
func deriveDefenseFromResidual(residual tactics.Code) tactics.Code {
	switch residual {
	case tactics.CodeNone:
		return tactics.Win
	case tactics.KoB:
		return tactics.KoA
	case tactics.KoA:
		return tactics.KoB
	default:
		return tactics.CodeNone
	}
}

// (d) defense pattern matcher: a candidate move anchored on a friendly
// stone already known to be attacked, verified by playing it and
// re-asking the reader whether the attack still succeeds.
func tacticalDefensePatterns(a *Analyzer) {
	if a.cfg.DefenseDB == nil {
		return
	}
	b := a.Board
	r := a.cfg.Reader
	for _, defender := range [2]board.Color{board.Black, board.White} {
		pattern.GlobalMatchPat(b, defender, pattern.AnchorOwn, a.cfg.DefenseDB,
			func(anchor board.Point, mcolor board.Color, pat *pattern.Pattern, o pattern.Orientation) {
				target := b.FindOrigin(anchor)
				rec := a.RecordAt(target)
				if rec.AttackCode == tactics.CodeNone {
					return
				}
				move := pat.MovePoint(b, anchor, o)
				if !b.OnBoard(move) || b.Color(move) != board.Empty {
					return
				}
				if rec.DefendCode != tactics.CodeNone && rec.DefensePoint == move {
					return
				}
				if !b.TryMove(move, mcolor) {
					return
				}
				defer b.PopGo()
				code, _ := r.Attack(b, target)
				merged := tactics.MergeDefense(rec.DefendCode, code)
				if merged > rec.DefendCode {
					a.addDefenseMove(target, merged, move)
				}
			})
	}
}

// (e) for every attacked worm, probe each first-order liberty as both
// an attacking continuation and (if the worm has a defense) a
// defending one.
func tacticalLibertyProbe(a *Analyzer) {
	b := a.Board
	r := a.cfg.Reader
	a.origins(true, func(origin board.Point) {
		rec := a.RecordAt(origin)
		if rec.AttackCode == tactics.CodeNone {
			return
		}
		attacker := rec.Color.Other()
		var libs []board.Point
		libs = b.FindLib(origin, libs)

		for _, L := range libs {
			if b.TryMove(L, attacker) {
				if b.Color(origin) == board.Empty {
					a.addAttackMove(origin, tactics.Win, L)
				} else {
					d, _ := r.FindDefense(b, origin)
					cur := a.RecordAt(origin).AttackCode
					if merged := tactics.MergeAttack(cur, d); merged > cur {
						a.addAttackMove(origin, merged, L)
					}
				}
				b.PopGo()
			}

			rec = a.RecordAt(origin)
			if rec.DefendCode == tactics.CodeNone {
				continue
			}
			if b.TryMove(L, rec.Color) {
				code, _ := r.Attack(b, origin)
				cur := a.RecordAt(origin).DefendCode
				if merged := tactics.MergeDefense(cur, code); merged > cur {
					a.addDefenseMove(origin, merged, L)
				}
				b.PopGo()
			}
		}
	})
}
