// Package tactics implements the worm analyzer's external tactical
// reader collaborator: attack, find_defense, and does_defend from
// spec.md §6, backed by a bounded capturing-race search over the
// board's speculative move stack. spec.md §1 treats this reader as an
// external collaborator with a specified interface rather than
// something the analyzer itself redesigns; this package is that
// collaborator, built in the teacher's own search idiom (bounded
// negamax-style recursion with an undo stack and a transposition-style
// cache) rather than a full-strength Go engine.
package tactics

import "github.com/hailam/wormscope/internal/board"

// tacticallyAliveLib is the liberty count above which a worm is treated
// as safe from any capturing race the reader is willing to read out
// (spec.md §4.4's reader is bounded, not exhaustive: worms with more
// than this many liberties are reported as Win for the defender without
// further search, mirroring the teacher's own depth/liberty cutoffs in
// engine.Searcher).
const tacticallyAliveLib = 4

// Reader performs bounded attack/defense searches, playing the role
// spec.md §6 assigns to the external tactical reader. Depth is tracked
// as a pair — base depth and extra "ko" depth — the same two-knob
// scheme the teacher exposes as increase_depth_values/
// decrease_depth_values, since ko fights need extra plies to resolve.
type Reader struct {
	depth   int
	koDepth int
	cache   Cache
}

// NewReader returns a Reader with the default search depths.
func NewReader() *Reader {
	return &Reader{depth: 6, koDepth: 10, cache: newMemCache()}
}

// NewReaderWithCache returns a Reader backed by an external cache (for
// example internal/storage's badger-backed implementation), instead of
// the default in-memory one.
func NewReaderWithCache(c Cache) *Reader {
	return &Reader{depth: 6, koDepth: 10, cache: c}
}

// IncreaseDepth and DecreaseDepth widen or narrow the reader's search
// horizon, mirroring the teacher's depth-value stack used when a
// caller needs a deeper read for one probe without affecting others.
func (r *Reader) IncreaseDepth() { r.depth += 2; r.koDepth += 4 }
func (r *Reader) DecreaseDepth() {
	if r.depth > 2 {
		r.depth -= 2
	}
	if r.koDepth > 2 {
		r.koDepth -= 4
	}
}

// Attack searches for a way for the opponent of the worm at origin to
// capture it, returning the strongest code the reader can find and,
// if any attack exists, the point that starts it. CodeNone with
// NoPoint means the reader could not find an attack within its
// horizon.
func (r *Reader) Attack(b *board.Board, origin board.Point) (Code, board.Point) {
	color := b.Color(origin)
	if color != board.Black && color != board.White {
		return CodeNone, board.NoPoint
	}
	attacker := color.Other()
	return r.bestMove(b, origin, attacker, r.depth, KindAttack)
}

// FindDefense searches for a move by the worm's own color that saves
// it from the attack Attack would otherwise find, returning the
// strongest defense code and the defending point.
func (r *Reader) FindDefense(b *board.Board, origin board.Point) (Code, board.Point) {
	color := b.Color(origin)
	if color != board.Black && color != board.White {
		return CodeNone, board.NoPoint
	}
	return r.bestMove(b, origin, color, r.depth, KindDefense)
}

// DoesDefend reports whether playing move as the worm's own color at
// least keeps the worm alive to the reader's strongest standard
// (Win), i.e. whether move is as good an answer as FindDefense's own
// choice.
func (r *Reader) DoesDefend(b *board.Board, move, origin board.Point) bool {
	color := b.Color(origin)
	if color != board.Black && color != board.White {
		return false
	}
	if !b.TryMove(move, color) {
		return false
	}
	defer b.PopGo()
	code := r.attackSearch(b, origin, color.Other(), r.depth-1)
	return code == CodeNone
}

// bestMove tries every liberty of the worm at origin as a candidate
// move for side, keeping the strongest result according to kind's
// merge rule. It is shared by Attack (side is the opponent trying to
// capture) and FindDefense (side is the worm's own color trying to
// save it).
func (r *Reader) bestMove(b *board.Board, origin board.Point, side board.Color, depth int, kind ReadKind) (Code, board.Point) {
	if b.CountLib(origin) > tacticallyAliveLib {
		if kind == KindDefense {
			return Win, board.NoPoint
		}
		return CodeNone, board.NoPoint
	}
	if depth <= 0 {
		return CodeNone, board.NoPoint
	}

	key := ReadKey{Hash: b.Hash(), Origin: origin, Depth: depth, Kind: kind}
	if cached, ok := r.cache.Get(key); ok {
		return cached.Code, cached.Move
	}

	var libs []board.Point
	libs = b.FindLib(origin, libs)

	best := CodeNone
	bestMove := board.NoPoint
	for _, lib := range libs {
		if !b.TryMove(lib, side) {
			continue
		}
		stillThere := b.Color(origin) != board.Empty && b.OnBoard(origin)
		childDepth := depth - 1
		if b.KoPoint() != board.NoPoint {
			// A ko just arose: give the follow-up fight its own full
			// horizon rather than eating into the plain search budget,
			// the same widening the teacher's increase_depth_values
			// performs around ko threats.
			childDepth = r.koDepth
		}

		var merged Code
		if kind == KindAttack {
			// side is the attacker; the worm vanishing outright means
			// the defender found no reply (defenseFound = CodeNone).
			defenseFound := CodeNone
			if stillThere {
				defenseFound, _ = r.defenseSearch(b, origin, side.Other(), childDepth)
			}
			merged = mergeAttack(best, defenseFound)
		} else {
			// side is the defender; the opposing worm (or this worm's
			// last liberty) vanishing means the attacker found no reply.
			attackFound := CodeNone
			if stillThere {
				attackFound = r.attackSearch(b, origin, side.Other(), childDepth)
			}
			merged = mergeDefense(best, attackFound)
		}
		b.PopGo()

		if merged != best {
			best = merged
			bestMove = lib
		}
		if best == Win {
			break
		}
	}

	r.cache.Put(key, ReadResult{Code: best, Move: bestMove})
	return best, bestMove
}

// attackSearch returns only the code half of bestMove's attack
// search, used internally when recursing (the move itself is only
// needed at the top level).
func (r *Reader) attackSearch(b *board.Board, origin board.Point, attacker board.Color, depth int) Code {
	color := b.Color(origin)
	if color != board.Black && color != board.White {
		return CodeNone
	}
	code, _ := r.bestMove(b, origin, attacker, depth, KindAttack)
	return code
}

// defenseSearch is attackSearch's mirror for the defender's side.
func (r *Reader) defenseSearch(b *board.Board, origin board.Point, defender board.Color, depth int) (Code, board.Point) {
	color := b.Color(origin)
	if color != board.Black && color != board.White {
		return CodeNone, board.NoPoint
	}
	return r.bestMove(b, origin, defender, depth, KindDefense)
}
