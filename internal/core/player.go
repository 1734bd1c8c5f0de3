package core

// Player identifies the side owning a piece
type Player byte

const (
	PlayerBlue Player = iota + 1
	PlayerRed
)

func (p Player) String() string {
	switch p {
	case PlayerBlue:
		return "blue"
	case PlayerRed:
		return "red"
	default:
		return "-"
	}
}

// Color returns the foreground color pieces of this player are drawn in
func (p Player) Color() Color {
	if p == PlayerRed {
		return ColorRed
	}
	return ColorBlue
}
