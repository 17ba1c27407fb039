package worm

import (
	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/life"
)

// unconditionalStage implements spec.md §4.3: runs the external
// unconditional-life oracle once per color and maps its verdicts onto
// worms and empty points. White runs first, Black second, so that
// Black's assignment wins on any point both oracles flag — "BLACK
// runs last and overwrites for tied points," per spec.md.
func unconditionalStage(a *Analyzer) {
	b := a.Board
	for _, c := range [2]board.Color{board.White, board.Black} {
		flags := life.Compute(b, c)
		for p, flag := range flags {
			if flag == life.FlagNone {
				continue
			}
			switch pc := b.Color(p); {
			case pc == c:
				a.mutate(p, func(r *Record) {
					r.UnconditionalStatus = StatusAlive
					if flag == life.FlagAlive {
						r.Invincible = true
					}
				})
			case pc == board.Empty:
				border := StatusWhiteBorder
				if c == board.Black {
					border = StatusBlackBorder
				}
				a.mutate(p, func(r *Record) { r.UnconditionalStatus = border })
			case pc == c.Other():
				a.mutate(p, func(r *Record) { r.UnconditionalStatus = StatusDead })
			}
			a.PropagateWorm(p)
		}
	}
}
