package pattern

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hailam/wormscope/internal/board"
)

// DB is a loaded pattern database — the Go analogue of attpat_db and
// defpat_db, populated either from a binary file (LoadBinary, in the
// same fixed-record spirit as the teacher's Polyglot book loader) or
// from a literal Go slice via NewDB.
type DB struct {
	patterns []Pattern
}

// NewDB wraps a literal pattern slice, e.g. one of the Default*
// pattern sets below, or patterns assembled by a caller.
func NewDB(patterns []Pattern) *DB { return &DB{patterns: patterns} }

// Len reports how many patterns the database holds.
func (db *DB) Len() int { return len(db.patterns) }

// WriteBinary serializes the database. A pattern's Check predicate, if
// any, cannot be serialized and is dropped — binary-loaded databases
// are always Check-free, exactly the restriction the source's own
// compiled-in autohelper table imposes on data-driven pattern files.
func (db *DB) WriteBinary(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(db.patterns))); err != nil {
		return err
	}
	for _, pat := range db.patterns {
		if err := writeString(w, pat.Name); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint16(len(pat.Elements))); err != nil {
			return err
		}
		for _, e := range pat.Elements {
			if err := binary.Write(w, binary.BigEndian, int8(e.DX)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.BigEndian, int8(e.DY)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.BigEndian, byte(e.Att)); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.BigEndian, int8(pat.MoveDX)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, int8(pat.MoveDY)); err != nil {
			return err
		}
	}
	return nil
}

// LoadBinary reads a database written by WriteBinary.
func LoadBinary(r io.Reader) (*DB, error) {
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, err
	}
	patterns := make([]Pattern, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("pattern: reading name of record %d: %w", i, err)
		}
		var elemCount uint16
		if err := binary.Read(r, binary.BigEndian, &elemCount); err != nil {
			return nil, err
		}
		elements := make([]Element, elemCount)
		for j := range elements {
			var dx, dy int8
			var att byte
			if err := binary.Read(r, binary.BigEndian, &dx); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.BigEndian, &dy); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.BigEndian, &att); err != nil {
				return nil, err
			}
			elements[j] = Element{DX: int(dx), DY: int(dy), Att: Content(att)}
		}
		var moveDX, moveDY int8
		if err := binary.Read(r, binary.BigEndian, &moveDX); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &moveDY); err != nil {
			return nil, err
		}
		patterns = append(patterns, Pattern{
			Name:     name,
			Elements: elements,
			MoveDX:   int(moveDX),
			MoveDY:   int(moveDY),
		})
	}
	return &DB{patterns: patterns}, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// MatchAnchor tries every pattern in db against a single already-known
// anchor point, in every orientation, without rescanning the board.
// It probes one point's neighborhood without a full GlobalMatchPat
// sweep; no stage of the worm analyzer calls it.
func MatchAnchor(b *board.Board, anchor board.Point, color board.Color, db *DB, cb Callback) {
	for i := range db.patterns {
		pat := &db.patterns[i]
		for o := Orientation(0); o < numOrientations; o++ {
			if pat.matchesAt(b, anchor, color, o) {
				cb(anchor, color, pat, o)
			}
		}
	}
}

// DefaultAttackPatterns returns a small built-in attpat_db: shapes
// anchored on an enemy stone that suggest a promising attacking move.
// Every suggestion is only a candidate — spec.md §4.4(b) always
// verifies it by actually playing the move and consulting the
// tactical reader, so an over-eager geometric guess here costs
// nothing but a wasted probe.
func DefaultAttackPatterns() *DB {
	return NewDB([]Pattern{
		{
			Name: "push_from_behind",
			Elements: []Element{
				{DX: 0, DY: 0, Att: EnemyC},
				{DX: -1, DY: 0, Att: OwnC},
				{DX: 0, DY: 1, Att: EmptyC},
			},
			MoveDX: 0, MoveDY: 1,
		},
		{
			Name: "diagonal_hane",
			Elements: []Element{
				{DX: 0, DY: 0, Att: EnemyC},
				{DX: 1, DY: 1, Att: OwnC},
				{DX: 1, DY: 0, Att: EmptyC},
			},
			MoveDX: 1, MoveDY: 0,
		},
	})
}

// DefaultDefensePatterns returns a small built-in defpat_db: shapes
// anchored on a friendly stone that suggest a promising defensive
// move, verified the same way by the analyzer before being trusted.
func DefaultDefensePatterns() *DB {
	return NewDB([]Pattern{
		{
			Name: "extend_to_open_liberty",
			Elements: []Element{
				{DX: 0, DY: 0, Att: OwnC},
				{DX: 0, DY: 1, Att: EmptyC},
			},
			MoveDX: 0, MoveDY: 1,
		},
		{
			Name: "diagonal_connect",
			Elements: []Element{
				{DX: 0, DY: 0, Att: OwnC},
				{DX: 1, DY: 1, Att: OwnC},
				{DX: 1, DY: 0, Att: EmptyC},
			},
			MoveDX: 1, MoveDY: 0,
		},
	})
}
