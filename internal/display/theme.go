package display

import (
	"fmt"
	"os"
	"sort"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"chessboard/internal/core"
)

type ThemeName string

const (
	ThemeAuto    ThemeName = "auto"
	ThemeOff     ThemeName = "off"
	ThemeClassic ThemeName = "classic"
	ThemeBrown   ThemeName = "brown"
	ThemeGreen   ThemeName = "green"
	ThemeGray    ThemeName = "gray"
)

// Theme maps abstract colors to terminal colors. A color missing from a map
// leaves the terminal default in place. Profile bounds what the terminal can
// show; Ascii disables styling entirely.
type Theme struct {
	Foreground map[core.Color]termenv.Color
	Background map[core.Color]termenv.Color
	Profile    termenv.Profile
}

var themes = map[ThemeName]Theme{
	ThemeOff: {Profile: termenv.Ascii},
	ThemeClassic: {
		Foreground: map[core.Color]termenv.Color{
			core.ColorBlack: termenv.ANSIBlack,
			core.ColorBlue:  termenv.ANSIBlue,
			core.ColorRed:   termenv.ANSIRed,
		},
		Background: map[core.Color]termenv.Color{
			core.ColorWhite: termenv.ANSIWhite,
			core.ColorBlack: termenv.ANSIBlack,
		},
		Profile: termenv.ANSI,
	},
	ThemeBrown: {
		Foreground: map[core.Color]termenv.Color{
			core.ColorBlue: termenv.ANSI256Color(27),
			core.ColorRed:  termenv.ANSI256Color(160),
		},
		Background: map[core.Color]termenv.Color{
			core.ColorWhite: termenv.ANSI256Color(230), // Beige
			core.ColorBlack: termenv.ANSI256Color(94),  // Brown
		},
		Profile: termenv.ANSI256,
	},
	ThemeGreen: {
		Foreground: map[core.Color]termenv.Color{
			core.ColorBlue: termenv.ANSI256Color(21),
			core.ColorRed:  termenv.ANSI256Color(196),
		},
		Background: map[core.Color]termenv.Color{
			core.ColorWhite: termenv.ANSI256Color(157), // Light green
			core.ColorBlack: termenv.ANSI256Color(22),  // Dark green
		},
		Profile: termenv.ANSI256,
	},
	ThemeGray: {
		Foreground: map[core.Color]termenv.Color{
			core.ColorBlue: termenv.ANSI256Color(33),
			core.ColorRed:  termenv.ANSI256Color(160),
		},
		Background: map[core.Color]termenv.Color{
			core.ColorWhite: termenv.ANSI256Color(251), // Light gray
			core.ColorBlack: termenv.ANSI256Color(240), // Dark gray
		},
		Profile: termenv.ANSI256,
	},
}

// ThemeNames lists the selectable themes, auto included
func ThemeNames() []string {
	names := []string{string(ThemeAuto)}
	for name := range themes {
		names = append(names, string(name))
	}
	sort.Strings(names[1:])
	return names
}

// LookupTheme resolves a theme by name. Auto picks classic limited to what
// the environment of out allows (NO_COLOR, CLICOLOR_FORCE), and off when out
// is not a terminal.
func LookupTheme(name ThemeName, out *os.File) (Theme, error) {
	if name == ThemeAuto {
		if !ColorEnabled(out) {
			return themes[ThemeOff], nil
		}
		theme := themes[ThemeClassic]
		theme.Profile = theme.limit(termenv.NewOutput(out).EnvColorProfile())
		return theme, nil
	}
	theme, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("invalid theme: %s (use: %v)", name, ThemeNames())
	}
	return theme, nil
}

// ColorEnabled reports whether f is a terminal
func ColorEnabled(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// limit returns the less capable of the theme's profile and p.
// Profiles order from TrueColor (0) to Ascii.
func (t Theme) limit(p termenv.Profile) termenv.Profile {
	if p > t.Profile {
		return p
	}
	return t.Profile
}

// Colored reports whether the theme emits any escape codes
func (t Theme) Colored() bool {
	return t.Profile != termenv.Ascii
}

// Style renders text with the colors mapped from fg and bg
func (t Theme) Style(text string, fg, bg core.Color) string {
	if !t.Colored() {
		return text
	}
	style := t.Profile.String(text)
	if c, ok := t.Background[bg]; ok {
		style = style.Background(t.Profile.Convert(c))
	}
	if c, ok := t.Foreground[fg]; ok {
		style = style.Foreground(t.Profile.Convert(c))
	}
	return style.String()
}
