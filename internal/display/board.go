package display

import (
	"bufio"
	"fmt"
	"io"

	"chessboard/internal/board"
)

// Sink writes rendered boards to a terminal stream
type Sink struct {
	out    io.Writer
	theme  Theme
	labels bool
}

func NewSink(out io.Writer, theme Theme) *Sink {
	return &Sink{out: out, theme: theme}
}

func (s *Sink) SetTheme(theme Theme) {
	s.theme = theme
}

// SetLabels toggles file and rank labels around the grid
func (s *Sink) SetLabels(on bool) {
	s.labels = on
}

func (s *Sink) Labels() bool {
	return s.labels
}

// Write draws the grid. Rows are separated by a newline with none after the
// last one; the output is flushed before returning.
func (s *Sink) Write(g board.Grid) error {
	w := bufio.NewWriter(s.out)

	if s.labels {
		fmt.Fprint(w, s.label(fileLabels)+"\n")
	}
	for r, row := range g.Rows() {
		if r > 0 {
			w.WriteByte('\n')
		}
		if s.labels {
			fmt.Fprint(w, s.label(fmt.Sprintf("%d ", board.Size-r)))
		}
		for _, cell := range row {
			s.writeCell(w, cell)
		}
		if s.labels {
			fmt.Fprint(w, s.label(fmt.Sprintf(" %d", board.Size-r)))
		}
	}
	if s.labels {
		fmt.Fprint(w, "\n"+s.label(fileLabels))
	}

	return w.Flush()
}

const fileLabels = "  abcdefgh"

func (s *Sink) writeCell(w *bufio.Writer, cell board.Cell) {
	w.WriteString(s.theme.Style(string(cell.Glyph), cell.Foreground, cell.Background))
}

func (s *Sink) label(text string) string {
	return Colorize(s.theme.Colored(), Cyan, text)
}
