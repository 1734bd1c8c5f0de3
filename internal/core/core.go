package core

// Color is an abstract display color. Sinks map it to whatever the terminal
// supports.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
	ColorBlue
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	default:
		return "black"
	}
}
