package core

import "unicode"

type Kind byte

const (
	KindEmpty Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

var kindGlyphs = [...]rune{
	KindEmpty:  ' ',
	KindPawn:   'P',
	KindKnight: 'N',
	KindBishop: 'B',
	KindRook:   'R',
	KindQueen:  'Q',
	KindKing:   'K',
}

var kindNames = [...]string{
	KindEmpty:  "empty",
	KindPawn:   "pawn",
	KindKnight: "knight",
	KindBishop: "bishop",
	KindRook:   "rook",
	KindQueen:  "queen",
	KindKing:   "king",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Piece is the content of one square. The zero value is Empty.
// Pieces are compared with ==.
type Piece struct {
	kind  Kind
	owner Player
}

// Empty is the content of an unoccupied square
var Empty = Piece{}

// NewPiece builds a piece of the given kind. It returns Empty for the empty
// or an unknown kind, and for an owner that is not a player.
func NewPiece(kind Kind, owner Player) Piece {
	if kind == KindEmpty || kind > KindKing {
		return Empty
	}
	if owner != PlayerBlue && owner != PlayerRed {
		return Empty
	}
	return Piece{kind: kind, owner: owner}
}

func Pawn(p Player) Piece   { return NewPiece(KindPawn, p) }
func Knight(p Player) Piece { return NewPiece(KindKnight, p) }
func Bishop(p Player) Piece { return NewPiece(KindBishop, p) }
func Rook(p Player) Piece   { return NewPiece(KindRook, p) }
func Queen(p Player) Piece  { return NewPiece(KindQueen, p) }
func King(p Player) Piece   { return NewPiece(KindKing, p) }

func (p Piece) IsEmpty() bool {
	return p.kind == KindEmpty
}

// Owner reports the owning player, false for Empty
func (p Piece) Owner() (Player, bool) {
	if p.IsEmpty() {
		return 0, false
	}
	return p.owner, true
}

// Glyph returns the display character of the piece, a space for Empty
func (p Piece) Glyph() rune {
	return kindGlyphs[p.kind]
}

// Color returns the owner's foreground color, ColorBlack for Empty
func (p Piece) Color() Color {
	if p.IsEmpty() {
		return ColorBlack
	}
	return p.owner.Color()
}

// Letter returns the FEN letter: uppercase for Red, lowercase for Blue, 0 for Empty
func (p Piece) Letter() rune {
	if p.IsEmpty() {
		return 0
	}
	if p.owner == PlayerBlue {
		return unicode.ToLower(p.Glyph())
	}
	return p.Glyph()
}

// PieceFromLetter parses a FEN letter
func PieceFromLetter(ch rune) (Piece, bool) {
	owner := PlayerRed
	if unicode.IsLower(ch) {
		owner = PlayerBlue
	}
	upper := unicode.ToUpper(ch)
	for k := KindPawn; k <= KindKing; k++ {
		if kindGlyphs[k] == upper {
			return NewPiece(k, owner), true
		}
	}
	return Empty, false
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return p.kind.String()
	}
	return p.owner.String() + " " + p.kind.String()
}
