package board

import (
	"iter"

	"chessboard/internal/core"
)

// Cell is one rendered square
type Cell struct {
	Glyph      rune
	Foreground core.Color
	Background core.Color
}

// Grid is the render-ready picture of a board, top row first
type Grid [Size][Size]Cell

// Rows yields the grid row by row
func (g Grid) Rows() iter.Seq2[int, [Size]Cell] {
	return func(yield func(int, [Size]Cell) bool) {
		for r, row := range g {
			if !yield(r, row) {
				return
			}
		}
	}
}

// squareColor gives the checkerboard background of a storage cell
func squareColor(row, col int) core.Color {
	if (row+col)%2 == 0 {
		return core.ColorWhite
	}
	return core.ColorBlack
}

// Render describes the board for a display sink. It does not mutate the board.
func (b *Board) Render() Grid {
	var g Grid
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := b.squares[row][col]
			g[row][col] = Cell{
				Glyph:      piece.Glyph(),
				Foreground: piece.Color(),
				Background: squareColor(row, col),
			}
		}
	}
	return g
}

// CellAt returns the rendered cell for a square in input coordinates
func (g Grid) CellAt(p Place) (Cell, bool) {
	if !p.Valid() {
		return Cell{}, false
	}
	row, col := index(p)
	return g[row][col], true
}
