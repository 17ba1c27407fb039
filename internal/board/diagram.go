package board

import (
	"fmt"
	"strings"
)

// ParseDiagram builds a Board from a textual diagram, top row first (as
// conventionally printed, highest-numbered row at the top), one
// character per point: '.' for empty, 'X' or 'x' for Black, 'O' or 'o'
// for White. Blank lines and leading/trailing whitespace are ignored.
// This is the Go-board analogue of the teacher's board.ParseFEN, used
// throughout the test suite instead of hand-building boards point by
// point.
func ParseDiagram(diagram string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: empty diagram")
	}
	size := len(rows)
	for _, r := range rows {
		if len(r) != size {
			return nil, fmt.Errorf("board: diagram is not square (%d rows, row of length %d)", size, len(r))
		}
	}

	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	for i, line := range rows {
		row := size - 1 - i // top line is the highest row number
		for col, ch := range line {
			p := b.Point(row, col)
			switch ch {
			case '.', '+':
				b.cells[p] = Empty
			case 'X', 'x':
				b.cells[p] = Black
			case 'O', 'o':
				b.cells[p] = White
			default:
				return nil, fmt.Errorf("board: unrecognized diagram character %q", ch)
			}
		}
	}
	return b, nil
}
