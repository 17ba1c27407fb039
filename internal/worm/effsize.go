package worm

import "github.com/hailam/wormscope/internal/board"

// effectiveSizeStage implements spec.md §4.2: a BFS from every stone
// out to radius 3, distributing fractional territory credit to the
// worm(s) nearest each empty point. A stone contributes 1.0 to its own
// worm; an empty point at distance 1-3 contributes 0.5, split evenly
// among every worm origin equidistant to it — "only one side can
// ultimately hold an empty point," per spec.md's rationale.
func effectiveSizeStage(a *Analyzer) {
	b := a.Board
	n := len(a.records)

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	originSet := make([]map[board.Point]bool, n)

	b.Points(func(p board.Point) {
		if stoneColor(b.Color(p)) {
			dist[int(p)] = 0
			originSet[int(p)] = map[board.Point]bool{a.records[int(p)].Origin: true}
		}
	})

	var nbrs [4]board.Point
	for d := 1; d <= 3; d++ {
		b.Points(func(p board.Point) {
			if dist[int(p)] != -1 {
				return
			}
			var union map[board.Point]bool
			for _, nb := range b.Neighbors4(p, nbrs[:0]) {
				if !b.OnBoard(nb) || dist[int(nb)] != d-1 {
					continue
				}
				for o := range originSet[int(nb)] {
					if union == nil {
						union = make(map[board.Point]bool, 4)
					}
					union[o] = true
				}
			}
			if union != nil {
				dist[int(p)] = d
				originSet[int(p)] = union
			}
		})
	}

	// Only empty points distribute fractional credit here; a stone's
	// own contribution to its worm's effective size is just its size
	// (each stone is worth exactly 1.0 to itself), already captured by
	// r.Size below.
	credit := make(map[board.Point]float64)
	b.Points(func(p board.Point) {
		if stoneColor(b.Color(p)) {
			return
		}
		set := originSet[int(p)]
		if len(set) == 0 {
			return
		}
		share := 0.5 / float64(len(set))
		for o := range set {
			credit[o] += share
		}
	})

	a.origins(false, func(origin board.Point) {
		a.mutate(origin, func(r *Record) {
			r.EffSize = float64(r.Size) + credit[origin]
		})
		a.propagateOrigin(origin)
	})
}
