package worm

import "github.com/hailam/wormscope/internal/board"

// cutstoneStage implements spec.md §4.6 (the second half, alongside
// libertySpectrumStage): a stone worm that sits adjacent to two
// distinct enemy worms is a potential cutting stone (cutstone=1), or
// an outright cutting stone (cutstone=2) if those two enemy worms
// share no liberty at all. Grounded on original_source/engine/worm.c's
// cutstone loop right after ping_cave's liberty-spectrum loop.
func cutstoneStage(a *Analyzer) {
	b := a.Board
	a.origins(true, func(origin board.Point) {
		color := b.Color(origin)
		other := color.Other()

		w1, w2 := board.NoPoint, board.NoPoint
		for _, stone := range b.FindStones(origin) {
			var nbrs [4]board.Point
			for _, n := range b.Neighbors4(stone, nbrs[:0]) {
				if b.Color(n) != other {
					continue
				}
				enemyOrigin := b.FindOrigin(n)
				switch {
				case w1 == board.NoPoint:
					w1 = enemyOrigin
				case w1 != enemyOrigin && w2 == board.NoPoint:
					w2 = enemyOrigin
				}
			}
		}
		if w2 == board.NoPoint {
			return
		}

		cutstone := 2
		b.Points(func(lib board.Point) {
			if b.Color(lib) != board.Empty {
				return
			}
			if b.LibertyOfString(lib, w1) && b.LibertyOfString(lib, w2) {
				cutstone = 1
			}
		})
		a.mutate(origin, func(r *Record) { r.Cutstone = cutstone })
		a.propagateOrigin(origin)
	})
}
