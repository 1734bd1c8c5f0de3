package game

import (
	"chessboard/internal/board"
	"chessboard/internal/core"
)

// Snapshot is the board after one relocation
type Snapshot struct {
	Layout   string      // FEN placement at this point
	From, To board.Place // Relocation that created this position (zero for initial)
	Piece    core.Piece  // Piece that was moved
	Replaced core.Piece  // Previous occupant of To, Empty if none
}

// Game wraps a board and records every successful relocation
type Game struct {
	board     *board.Board
	snapshots []Snapshot
}

func New(b *board.Board) *Game {
	return &Game{
		board: b,
		snapshots: []Snapshot{
			{Layout: b.Layout()},
		},
	}
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Relocate forwards to the board and records the result on success
func (g *Game) Relocate(from, to board.Place) error {
	// Off-board squares read as Empty here; Relocate rejects them below.
	replaced, _ := g.board.At(to)
	if err := g.board.Relocate(from, to); err != nil {
		return err
	}
	piece, err := g.board.At(to)
	if err != nil {
		return err
	}
	g.snapshots = append(g.snapshots, Snapshot{
		Layout:   g.board.Layout(),
		From:     from,
		To:       to,
		Piece:    piece,
		Replaced: replaced,
	})
	return nil
}

// Moves lists the relocations in order, e.g. "a1a3"
func (g *Game) Moves() []string {
	moves := []string{}
	for _, s := range g.snapshots[1:] {
		moves = append(moves, s.From.String()+s.To.String())
	}
	return moves
}

func (g *Game) Snapshots() []Snapshot {
	return append([]Snapshot(nil), g.snapshots...)
}

func (g *Game) InitialLayout() string {
	return g.snapshots[0].Layout
}

func (g *Game) CurrentLayout() string {
	return g.snapshots[len(g.snapshots)-1].Layout
}
