package board

import (
	"errors"
	"fmt"
	"strings"

	"chessboard/internal/core"
)

// StartingLayout is the FEN piece placement of New()
const StartingLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var ErrInvalidLayout = errors.New("invalid layout")

// ParseLayout reads a FEN piece placement field. Lowercase letters are Blue,
// uppercase Red; the first rank listed is the top printed row.
func ParseLayout(placement string) (*Board, error) {
	ranks := strings.Split(strings.TrimSpace(placement), "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalidLayout, Size, len(ranks))
	}

	b := &Board{}
	for r := 0; r < Size; r++ {
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= Size {
				return nil, fmt.Errorf("%w: too many pieces in rank %d", ErrInvalidLayout, Size-r)
			}
			piece, ok := core.PieceFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidLayout, ch)
			}
			b.squares[r][file] = piece
			file++
		}
		if file != Size {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidLayout, Size-r, file)
		}
	}

	return b, nil
}

// Layout writes the board as a FEN piece placement field
func (b *Board) Layout() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Size; f++ {
			piece := b.squares[r][f]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
