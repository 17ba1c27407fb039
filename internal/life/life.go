// Package life implements the worm analyzer's external unconditional-life
// oracle: Benson's algorithm for unconditionally alive chains, the
// collaborator spec.md §4.3's driver calls as unconditional_life(out_grid,
// color). A chain proved alive here cannot be captured even if the
// opponent is given an unbounded run of consecutive moves; this is a
// strictly stronger (and structural, not searched) guarantee than
// anything the tactical reader in internal/tactics can provide.
package life

import "github.com/hailam/wormscope/internal/board"

// Flag is the per-point classification unconditional_life reports. The
// source distinguishes a "weak" and a "strong" (value 1) flag; Benson's
// criterion is itself an unconditional proof, so every point this
// package flags is the strong case — there is no weaker flag value.
type Flag uint8

const (
	FlagNone  Flag = 0
	FlagAlive Flag = 1
)

type chain struct {
	origin board.Point
	stones []board.Point
	libs   map[board.Point]bool
}

type region struct {
	points  []board.Point
	pure    bool // borders no stone of the opposite color
	borders map[board.Point]bool
}

// Compute returns, for the given color, the set of points belonging
// either to an unconditionally alive chain of that color or to one of
// its vital eye regions, per Benson's algorithm. A point absent from
// the result (or mapped to FlagNone) is undetermined by this oracle —
// the worm analyzer's tactical reader is consulted for those.
func Compute(b *board.Board, color board.Color) map[board.Point]Flag {
	chains := findChains(b, color)
	regions := findRegions(b, color)

	aliveChain := make([]bool, len(chains))
	for i := range aliveChain {
		aliveChain[i] = true
	}
	liveRegion := make([]bool, len(regions))
	for i, r := range regions {
		liveRegion[i] = r.pure
	}

	chainIndex := make(map[board.Point]int, len(chains))
	for i, c := range chains {
		chainIndex[c.origin] = i
	}

	for {
		changed := false

		// A region can only still vouch for life if every chain
		// bordering it is itself still alive; a dead neighbor chain
		// means the region is no longer reliably enclosed.
		for i, r := range regions {
			if !liveRegion[i] {
				continue
			}
			for origin := range r.borders {
				if idx, ok := chainIndex[origin]; ok && !aliveChain[idx] {
					liveRegion[i] = false
					changed = true
					break
				}
			}
		}

		// A chain needs at least two distinct vital regions among the
		// still-live candidates to stay alive.
		for i, c := range chains {
			if !aliveChain[i] {
				continue
			}
			vitalCount := 0
			for j, r := range regions {
				if !liveRegion[j] {
					continue
				}
				if vitalTo(r, c) {
					vitalCount++
				}
			}
			if vitalCount < 2 {
				aliveChain[i] = false
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	out := make(map[board.Point]Flag)
	for i, c := range chains {
		if !aliveChain[i] {
			continue
		}
		for _, p := range c.stones {
			out[p] = FlagAlive
		}
	}
	for i, r := range regions {
		if !liveRegion[i] {
			continue
		}
		vital := false
		for ci, c := range chains {
			if aliveChain[ci] && vitalTo(r, c) {
				vital = true
				break
			}
		}
		if !vital {
			continue
		}
		for _, p := range r.points {
			out[p] = FlagAlive
		}
	}
	return out
}

// vitalTo reports whether every point of r is a liberty of chain c
// specifically — the precise per-chain eye test, not merely "borders a
// stone of the target color somewhere in the region."
func vitalTo(r region, c chain) bool {
	for _, p := range r.points {
		if !c.libs[p] {
			return false
		}
	}
	return true
}

// findChains enumerates the maximal strings of color on the board.
func findChains(b *board.Board, color board.Color) []chain {
	var chains []chain
	seen := make(map[board.Point]bool)
	b.Points(func(p board.Point) {
		if b.Color(p) != color || seen[p] {
			return
		}
		// Raster order always reaches a string's origin (its
		// numerically smallest point) before any other member, so an
		// unseen point here is always starting a fresh chain.
		origin := b.FindOrigin(p)
		stones := b.FindStones(p)
		for _, s := range stones {
			seen[s] = true
		}
		libs := make(map[board.Point]bool, 4)
		for _, l := range b.FindLib(p, nil) {
			libs[l] = true
		}
		chains = append(chains, chain{origin: origin, stones: stones, libs: libs})
	})
	return chains
}

// findRegions enumerates maximal 4-connected empty areas, each tagged
// with whether it borders only stones of color (pure, i.e. a genuine
// candidate eyespace for color) and with the set of color-chain
// origins bordering it.
func findRegions(b *board.Board, color board.Color) []region {
	var regions []region
	seen := make(map[board.Point]bool)
	var nbrs [4]board.Point

	b.Points(func(start board.Point) {
		if b.Color(start) != board.Empty || seen[start] {
			return
		}
		var pts []board.Point
		borders := make(map[board.Point]bool)
		pure := true

		stack := []board.Point{start}
		seen[start] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pts = append(pts, p)
			for _, n := range b.Neighbors4(p, nbrs[:0]) {
				c := b.Color(n)
				switch {
				case c == board.Empty:
					if !seen[n] {
						seen[n] = true
						stack = append(stack, n)
					}
				case c == color:
					borders[b.FindOrigin(n)] = true
				case c != board.OffBoard:
					pure = false
				}
			}
		}
		regions = append(regions, region{points: pts, pure: pure, borders: borders})
	})
	return regions
}
