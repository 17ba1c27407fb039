// Package worm implements the worm analyzer: the pipeline that
// partitions a board into maximal same-color connected components
// ("worms") and empty cavities, and computes the tactical and
// structural attribute bundle spec.md §3 lists for each — attack and
// defense points, cutting-stone classification, liberty spectrum,
// genus, lunches, inessentiality, unconditional status, and effective
// size. It sits atop internal/board (the position and move stack),
// internal/tactics (the external tactical reader), internal/life (the
// external unconditional-life oracle), and internal/pattern (the
// pattern matcher), exactly the external collaborators spec.md §6
// names.
package worm

import (
	"fmt"

	"github.com/hailam/wormscope/internal/board"
	"github.com/hailam/wormscope/internal/pattern"
	"github.com/hailam/wormscope/internal/tactics"
)

// Status is the five-valued unconditional_status tag from spec.md §3.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusAlive
	StatusDead
	StatusWhiteBorder
	StatusBlackBorder
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "ALIVE"
	case StatusDead:
		return "DEAD"
	case StatusWhiteBorder:
		return "WHITE_BORDER"
	case StatusBlackBorder:
		return "BLACK_BORDER"
	default:
		return "UNKNOWN"
	}
}

// Record is one worm's attribute bundle, spec.md §3's table. A record
// is meaningful only at its worm's origin; every other stone of the
// worm carries an identical copy (see Analyzer.propagateOrigin).
type Record struct {
	Color      board.Color
	Origin     board.Point
	Size       int
	EffSize    float64
	Liberties  int
	Liberties2 int
	Liberties3 int
	Liberties4 int
	Genus      int
	Cutstone   int // 0, 1, or 2 (spec.md §4.7)
	Cutstone2  int // set by the (out-of-scope) connection pass; always 0 here

	AttackCode   tactics.Code
	AttackPoint  board.Point
	DefendCode   tactics.Code
	DefensePoint board.Point

	Lunch board.Point

	Inessential bool
	Invincible  bool

	UnconditionalStatus Status
}

func zeroRecord() Record {
	return Record{AttackPoint: board.NoPoint, DefensePoint: board.NoPoint, Lunch: board.NoPoint}
}

// InvariantError reports a violated internal invariant (spec.md §7).
// Every invariant spec.md names is a fatal condition in a correctly
// driven pipeline, so the analyzer panics with this type rather than
// threading an error return through every stage — the Go analogue of
// the C source's ASSERT1/gg_assert aborting the process.
type InvariantError struct {
	Stage string
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("worm: invariant violated in %s: %s", e.Stage, e.Msg)
}

func assert(stage string, cond bool, msg string, args ...any) {
	if !cond {
		panic(&InvariantError{Stage: stage, Msg: fmt.Sprintf(msg, args...)})
	}
}

// SemeaiSolver is the small-semeai solver spec.md §2 stage 9 delegates
// to. spec.md gives it no interface in §6 (unlike the tactical reader,
// the unconditional-life oracle, and the pattern matcher, which are
// fully specified collaborators) — it is named only as "(delegated)".
// The zero value of Analyzer runs without one, and no stage of
// MakeWorms calls Resolve; threatStage (the other half of stage 9) does
// not depend on it.
type SemeaiSolver interface {
	// Resolve reports the outcome of a capturing race between two
	// adjacent worms, or ok=false if the solver declines to judge this
	// pair (e.g. not a semeai shape it recognizes).
	Resolve(b *board.Board, a, other board.Point) (code tactics.Code, ok bool)
}

// Config bundles an Analyzer's collaborators and tunables — the
// constructor-argument style internal/tactics.Reader and
// internal/pattern.DB already use, not a global or a CLI flag set
// (spec.md §1 scopes a CLI out of the core).
type Config struct {
	Reader    *tactics.Reader
	AttackDB  *pattern.DB
	DefenseDB *pattern.DB
	Semeai    SemeaiSolver // optional
}

// ThreatMove is one finding of the threat finder (spec.md §4.12):  a
// move that does not yet decide a worm's fate but would, if answered
// by the reader's best continuation, tip it to WIN. Threats are not
// part of Record (spec.md §3's table has no threat fields); they are
// the analyzer's contribution to the engine's move-generation move
// list, kept separate the way add_attack_threat_move/
// add_defense_threat_move feed a move list external to the worm
// records themselves.
type ThreatMove struct {
	Move   board.Point
	Origin board.Point
	Attack bool // true: attack threat; false: defense threat
}

// Analyzer holds the mutable state the pipeline shares across its
// eleven stages: the board, the worm-record array (board-sized, as
// spec.md §9's design notes recommend in place of the C source's
// pointer-cyclic records), and the external collaborators. It is the
// "explicit analyzer context" spec.md §9 asks for in place of the
// three process-wide C globals.
type Analyzer struct {
	Board *board.Board
	cfg   Config

	records []Record // indexed by int(board.Point)

	// triedAttack and triedDefense mark points already played as an
	// attack or a defense move during the refinement loop (spec.md
	// §4.5's "mark A and D in ... tried sets to avoid duplicate
	// work"), mirroring the source's flat mxother/mxcolor position
	// arrays — tried-as-a-role, not tried-as-a-color.
	triedAttack  map[board.Point]bool
	triedDefense map[board.Point]bool

	Threats []ThreatMove
}

// gridLen mirrors board's own padded-grid sizing (stride = Size+2) so
// the record array can be indexed directly by board.Point without
// reaching into board's private fields.
func gridLen(b *board.Board) int {
	stride := b.Size + 2
	return stride * stride
}

// NewAnalyzer returns an Analyzer over b using the given collaborators.
func NewAnalyzer(b *board.Board, cfg Config) *Analyzer {
	a := &Analyzer{Board: b, cfg: cfg}
	a.reset()
	return a
}

func (a *Analyzer) reset() {
	n := gridLen(a.Board)
	a.records = make([]Record, n)
	for i := range a.records {
		a.records[i] = zeroRecord()
	}
	a.triedAttack = make(map[board.Point]bool)
	a.triedDefense = make(map[board.Point]bool)
	a.Threats = nil
}

// RecordAt returns the (always-authoritative, per the propagation
// invariant) worm record covering p.
func (a *Analyzer) RecordAt(p board.Point) Record {
	return a.records[int(p)]
}

// IsSameWorm reports whether p and q belong to the same worm.
func (a *Analyzer) IsSameWorm(p, q board.Point) bool {
	return a.records[int(p)].Origin == a.records[int(q)].Origin
}

// IsWormOrigin reports whether o is p's worm's origin.
func (a *Analyzer) IsWormOrigin(p, o board.Point) bool {
	return a.records[int(p)].Origin == o
}

// setOrigin overwrites the record stored at origin itself (not its
// propagated copies, which propagateOrigin refreshes separately).
func (a *Analyzer) setOrigin(origin board.Point, rec Record) {
	rec.Origin = origin
	a.records[int(origin)] = rec
}

// mutate applies fn to the authoritative record for p's worm (reading
// through to the origin first) and returns that origin; it does not
// propagate, so callers follow up with propagateOrigin (directly or
// through a touched set). Every stage after the builder goes through this rather
// than writing a.records[p] directly, so a write to any member point
// always lands on the origin's slot.
func (a *Analyzer) mutate(p board.Point, fn func(*Record)) board.Point {
	origin := a.records[int(p)].Origin
	rec := a.records[int(origin)]
	fn(&rec)
	a.records[int(origin)] = rec
	return origin
}

// PropagateWorm copies p's worm's authoritative record (at its origin)
// to every current member of the worm. Exposed per spec.md §6 for
// diagnostics, and used internally by every stage that mutates a
// record through mutate.
func (a *Analyzer) PropagateWorm(p board.Point) {
	a.propagateOrigin(a.records[int(p)].Origin)
}

// propagateOrigin re-walks the worm currently rooted at origin and
// copies its record to every member. FindStones works identically for
// a stone string or an empty cavity, since board.Color(origin)
// determines the flood's target color either way.
func (a *Analyzer) propagateOrigin(origin board.Point) {
	rec := a.records[int(origin)]
	for _, p := range a.Board.FindStones(origin) {
		a.records[int(p)] = rec
	}
}

// propagateAll re-propagates every worm currently on the board. Used
// at the end of stages (the refinement loop, the neighbor-defense
// patch) that touch many origins in one pass, rather than threading a
// per-origin dirty list through their inner loops.
func (a *Analyzer) propagateAll() {
	seen := make(map[board.Point]bool, len(a.records))
	a.Board.Points(func(p board.Point) {
		origin := a.records[int(p)].Origin
		if origin == board.NoPoint || seen[origin] {
			return
		}
		seen[origin] = true
		a.propagateOrigin(origin)
	})
}

// addAttackMove folds a newly found attack at move into the worm
// rooted at origin, never weakening an existing result (spec.md §8's
// monotonicity property): it only overwrites when code is strictly
// stronger than what is already recorded.
func (a *Analyzer) addAttackMove(origin board.Point, code tactics.Code, move board.Point) {
	a.mutate(origin, func(r *Record) {
		if code > r.AttackCode {
			r.AttackCode = code
			r.AttackPoint = move
		}
	})
	a.propagateOrigin(origin)
}

// addDefenseMove is addAttackMove's mirror for DefendCode/DefensePoint.
func (a *Analyzer) addDefenseMove(origin board.Point, code tactics.Code, move board.Point) {
	a.mutate(origin, func(r *Record) {
		if code > r.DefendCode {
			r.DefendCode = code
			r.DefensePoint = move
		}
	})
	a.propagateOrigin(origin)
}

// relocateAttackPoint moves origin's attack_point to move without
// touching attack_code, matching the refinement loop's C source
// exactly (spec.md §4.5 Case A/D): the existing code is already known
// nonzero, only the *point* is corrected.
func (a *Analyzer) relocateAttackPoint(origin, move board.Point) {
	a.mutate(origin, func(r *Record) { r.AttackPoint = move })
}

// setDefense unconditionally assigns defend_code/defense_point
// (spec.md §4.5 Case B/C always sets code to WIN directly, rather than
// merging — WIN is already the strongest code, so a plain assignment
// and a "stronger only" merge are equivalent here).
func (a *Analyzer) setDefense(origin board.Point, code tactics.Code, move board.Point) {
	a.mutate(origin, func(r *Record) { r.DefendCode = code; r.DefensePoint = move })
}

func (a *Analyzer) addAttackThreat(origin, move board.Point) {
	a.Threats = append(a.Threats, ThreatMove{Move: move, Origin: origin, Attack: true})
}

func (a *Analyzer) addDefenseThreat(origin, move board.Point) {
	a.Threats = append(a.Threats, ThreatMove{Move: move, Origin: origin, Attack: false})
}

// stoneColor reports whether c is a playable stone color (not Empty,
// not OffBoard).
func stoneColor(c board.Color) bool { return c == board.Black || c == board.White }

// origins calls fn for each worm's origin, in row-major order, once
// per worm (spec.md §5: iteration order is load-bearing and must be
// preserved exactly). If stonesOnly, empty cavities are skipped.
func (a *Analyzer) origins(stonesOnly bool, fn func(origin board.Point)) {
	a.Board.Points(func(p board.Point) {
		rec := a.records[int(p)]
		if rec.Origin != p {
			return
		}
		if stonesOnly && !stoneColor(rec.Color) {
			return
		}
		fn(p)
	})
}

// BuildWorms runs stage 1 alone (spec.md §6's cheap build_worms entry
// point): origins, size, and first-order liberties, with no tactical
// reading. Callers that only need structural information use this
// instead of the full MakeWorms pipeline.
func BuildWorms(a *Analyzer) {
	a.reset()
	buildStage(a)
}

// MakeWorms runs the full eleven-stage pipeline (spec.md §2) and
// leaves the record array populated and read-only, per spec.md §3's
// lifecycle.
func MakeWorms(a *Analyzer) {
	assert("entry", a.Board.Depth() == 0, "move stack must be at depth 0 on entry")

	a.reset()
	buildStage(a)

	if a.Board.StonesOnBoard() == 0 {
		// Mirrors the C source's early exit: with no stones, every
		// later stage is a no-op over stone worms, and stage 1 has
		// already populated cavity origins.
		return
	}

	effectiveSizeStage(a)
	unconditionalStage(a)
	tacticalStage(a)
	refinementStage(a)
	neighborDefenseStage(a)
	libertySpectrumStage(a)
	cutstoneStage(a)
	genusStage(a)
	threatStage(a)
	lunchStage(a)
	inessentialStage(a)

	assert("exit", a.Board.Depth() == 0, "move stack must be at depth 0 on exit")
}

// ReportWorm renders a diagnostic dump of every worm origin whose row
// lies in [m, n) (0-indexed, exposed per spec.md §6). This is the only
// place in the package that formats text; it performs no I/O itself,
// returning a string for the caller to log or print.
func (a *Analyzer) ReportWorm(m, n int) string {
	out := ""
	a.origins(false, func(origin board.Point) {
		row := a.Board.Row(origin)
		if row < m || row >= n {
			return
		}
		r := a.records[int(origin)]
		out += fmt.Sprintf("%s %s: size=%d libs=%d eff=%.2f genus=%d cut=%d attack=%s@%s defend=%s@%s lunch=%s status=%s\n",
			a.Board.String(origin), r.Color, r.Size, r.Liberties, r.EffSize, r.Genus, r.Cutstone,
			r.AttackCode, a.Board.String(r.AttackPoint), r.DefendCode, a.Board.String(r.DefensePoint),
			a.Board.String(r.Lunch), r.UnconditionalStatus)
	})
	return out
}
