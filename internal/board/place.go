package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Place is a square in input coordinates: X is the file, Y the rank,
// both 0-indexed with rank 0 at the bottom of the printed board.
type Place struct {
	X, Y uint8
}

func (p Place) Valid() bool {
	return p.X < Size && p.Y < Size
}

// String returns the algebraic name of the square, or "(x,y)" if off board
func (p Place) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%c", 'a'+p.X, '1'+p.Y)
}

// ParsePlace accepts algebraic squares ("a1") or numeric pairs ("0,0")
func ParsePlace(s string) (Place, error) {
	s = strings.TrimSpace(s)
	if x, y, ok := strings.Cut(s, ","); ok {
		px, err := strconv.ParseUint(strings.TrimSpace(x), 10, 8)
		if err != nil {
			return Place{}, fmt.Errorf("invalid place %q: %w", s, err)
		}
		py, err := strconv.ParseUint(strings.TrimSpace(y), 10, 8)
		if err != nil {
			return Place{}, fmt.Errorf("invalid place %q: %w", s, err)
		}
		return Place{X: uint8(px), Y: uint8(py)}, nil
	}

	if len(s) != 2 {
		return Place{}, fmt.Errorf("invalid place %q: expected square like a1", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Place{}, fmt.Errorf("invalid place %q: square off board", s)
	}
	return Place{X: file - 'a', Y: rank - '1'}, nil
}

// ParseMove splits a four character move such as "a1a3" into its squares
func ParseMove(s string) (from, to Place, err error) {
	if len(s) != 4 {
		return Place{}, Place{}, fmt.Errorf("invalid move %q: expected 4 characters", s)
	}
	if from, err = ParsePlace(s[:2]); err != nil {
		return Place{}, Place{}, err
	}
	if to, err = ParsePlace(s[2:]); err != nil {
		return Place{}, Place{}, err
	}
	return from, to, nil
}

// index maps input coordinates to storage (row, col). Storage row 0 is the
// top printed row, so ranks are mirrored.
func index(p Place) (row, col int) {
	return Size - 1 - int(p.Y), int(p.X)
}
