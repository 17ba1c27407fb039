package worm

import "github.com/hailam/wormscope/internal/board"

// libertySpectrumStage implements spec.md §4.6 (ping_cave): for every
// stone worm, compute (liberties2, liberties3, liberties4) on top of
// the already-known first-order liberty count. This also resets
// cutstone/cutstone2 to 0, matching original_source/engine/worm.c's
// single combined loop (the actual cutstone value is filled in by
// cutstoneStage right after).
func libertySpectrumStage(a *Analyzer) {
	b := a.Board
	a.origins(true, func(origin board.Point) {
		lib2, lib3, lib4 := pingCave(b, origin)
		a.mutate(origin, func(r *Record) {
			r.Liberties2 = lib2
			r.Liberties3 = lib3
			r.Liberties4 = lib4
			r.Cutstone = 0
			r.Cutstone2 = 0
		})
		a.propagateOrigin(origin)
	})
}

// pingCave computes the second/third/fourth-order liberty counts for
// the string at origin, per spec.md §4.6. The admitted-empties set
// (mse in the source) is shared across the three recursive passes —
// only the per-pass visited marker resets — which is the literal
// source behavior spec.md §9's Open Question preserves: in practice
// each pass can only admit the frontier the previous pass didn't
// already claim, so later passes frequently return 0 once the
// reachable cavity saturates.
func pingCave(b *board.Board, origin board.Point) (lib2, lib3, lib4 int) {
	color := b.Color(origin)
	other := color.Other()

	libs := b.FindLib(origin, nil)
	admitted := make(map[board.Point]bool, len(libs)*2)
	for _, l := range libs {
		admitted[l] = true
	}
	// A liberty flanked by two enemy stones (or one enemy stone and
	// the edge) on an opposing pair of sides blocks expansion through
	// it and is dropped from the seed set.
	for _, l := range libs {
		if flanked(b, l, other) {
			delete(admitted, l)
		}
	}

	lib2 = pingPass(b, origin, admitted, color)
	lib3 = pingPass(b, origin, admitted, color)
	lib4 = pingPass(b, origin, admitted, color)
	return
}

func flanked(b *board.Board, p board.Point, other board.Color) bool {
	n, s, w, e := b.North(p), b.South(p), b.West(p), b.East(p)
	vertical := (!b.OnBoard(s) || b.Color(s) == other) && (!b.OnBoard(n) || b.Color(n) == other)
	horizontal := (!b.OnBoard(w) || b.Color(w) == other) && (!b.OnBoard(e) || b.Color(e) == other)
	return vertical || horizontal
}

// pingPass is one ping_recurse invocation: an iterative flood (the
// design notes in spec.md §9 ask for this in place of the source's
// recursion, which can exceed typical stack limits on 19×19) starting
// at origin, walking through same-color stones and already-admitted
// empties, counting any *newly* admitted untouched empty it reaches.
// A ko point never extends the walk past itself, matching "never
// traverses a ko point for the second hop or beyond."
func pingPass(b *board.Board, origin board.Point, admitted map[board.Point]bool, color board.Color) int {
	other := color.Other()
	visited := map[board.Point]bool{origin: true}
	counter := 0
	stack := []board.Point{origin}
	var nbrs [4]board.Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ap := range b.Neighbors4(p, nbrs[:0]) {
			if b.OnBoard(ap) && b.Color(ap) == board.Empty && !admitted[ap] && !visited[ap] && !touchingColor(b, ap, other) {
				counter++
				visited[ap] = true
				admitted[ap] = true
			}
		}
		if b.IsKoPoint(p) {
			continue
		}
		for _, ap := range b.Neighbors4(p, nbrs[:0]) {
			if b.OnBoard(ap) && !visited[ap] && (admitted[ap] || b.Color(ap) == color) {
				visited[ap] = true
				stack = append(stack, ap)
			}
		}
	}
	return counter
}

// touchingColor reports whether p is 4-adjacent to any stone of color.
func touchingColor(b *board.Board, p board.Point, color board.Color) bool {
	return b.Color(b.North(p)) == color || b.Color(b.South(p)) == color ||
		b.Color(b.West(p)) == color || b.Color(b.East(p)) == color
}
