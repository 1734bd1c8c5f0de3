package board

import (
	"fmt"
	"strings"

	"chessboard/internal/core"
)

const Size = 8

// Board owns an 8x8 grid stored row-major, row 0 printed first
type Board struct {
	squares [Size][Size]core.Piece
}

var backRank = [Size]core.Kind{
	core.KindRook, core.KindKnight, core.KindBishop, core.KindQueen,
	core.KindKing, core.KindBishop, core.KindKnight, core.KindRook,
}

// New returns a board in the standard starting position, Blue on top
func New() *Board {
	b := &Board{}
	for col, kind := range backRank {
		b.squares[0][col] = core.NewPiece(kind, core.PlayerBlue)
		b.squares[1][col] = core.Pawn(core.PlayerBlue)
		b.squares[Size-2][col] = core.Pawn(core.PlayerRed)
		b.squares[Size-1][col] = core.NewPiece(kind, core.PlayerRed)
	}
	return b
}

// At returns the piece on the given square
func (b *Board) At(p Place) (core.Piece, error) {
	if !p.Valid() {
		return core.Empty, fmt.Errorf("place %v off board", p)
	}
	row, col := index(p)
	return b.squares[row][col], nil
}

// Relocate moves whatever stands on from to to, discarding the destination's
// occupant. No chess rules apply. The board is untouched on error.
func (b *Board) Relocate(from, to Place) error {
	if from == to || !from.Valid() || !to.Valid() {
		return &core.MoveError{Kind: core.ErrInvalidMove, From: from, To: to}
	}

	fr, fc := index(from)
	piece := b.squares[fr][fc]
	if piece.IsEmpty() {
		return &core.MoveError{Kind: core.ErrNoPieceToMove, From: from, To: to}
	}

	tr, tc := index(to)
	b.squares[tr][tc] = piece
	b.squares[fr][fc] = core.Empty
	return nil
}

// String creates a plain text representation of the board
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", Size-r))
		for f := 0; f < Size; f++ {
			piece := b.squares[r][f]
			if piece.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", piece.Letter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", Size-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
