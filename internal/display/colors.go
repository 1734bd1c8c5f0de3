package display

import "github.com/muesli/termenv"

// Message colors
const (
	Red    = termenv.ANSIRed
	Yellow = termenv.ANSIYellow
	Cyan   = termenv.ANSICyan
)

// Prompt returns a colored prompt string
func Prompt(text string) string {
	return Colorize(true, Yellow, text+" > ")
}

// Colorize wraps text in a foreground color, or returns it untouched when colors are off
func Colorize(enabled bool, color termenv.ANSIColor, text string) string {
	if !enabled {
		return text
	}
	return termenv.ANSI.String(text).Foreground(color).String()
}
