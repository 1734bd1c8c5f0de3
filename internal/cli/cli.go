package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"chessboard/internal/board"
	"chessboard/internal/display"
	"chessboard/internal/game"
)

// LineReader supplies input lines; *readline.Instance satisfies it
type LineReader interface {
	Readline() (string, error)
}

// Session owns one board and the sink it is drawn to
type Session struct {
	game    *game.Game
	sink    *display.Sink
	out     io.Writer
	tty     *os.File
	colored bool
	log     *log.Entry
}

func New(b *board.Board, sink *display.Sink, out io.Writer, logger *log.Logger) *Session {
	return &Session{
		game: game.New(b),
		sink: sink,
		out:  out,
		log:  logger.WithField("session", uuid.New().String()),
	}
}

// SetTerminal records the stream colors are detected on when the auto theme is chosen
func (s *Session) SetTerminal(f *os.File) {
	s.tty = f
}

// SetColored enables colored messages and prompt
func (s *Session) SetColored(on bool) {
	s.colored = on
}

func (s *Session) Board() *board.Board {
	return s.game.Board()
}

// NewReadline opens an interactive line editor with optional history
func NewReadline(historyFile string, colored bool) (*readline.Instance, error) {
	prompt := "chess > "
	if colored {
		prompt = display.Prompt("chess")
	}
	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// RunScript draws the board, then applies each move and draws it again.
// It stops at the first move that fails.
func (s *Session) RunScript(steps []string) error {
	if err := s.ShowBoard(); err != nil {
		return err
	}
	for i, step := range steps {
		from, to, err := board.ParseMove(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := s.game.Relocate(from, to); err != nil {
			s.log.WithError(err).WithField("step", step).Error("Scripted relocation failed")
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		s.log.WithField("step", step).Debug("Scripted relocation")
		if err := s.ShowBoard(); err != nil {
			return err
		}
	}
	return nil
}

// Run reads commands until quit or end of input
func (s *Session) Run(in LineReader) error {
	s.ShowWelcome()
	for {
		line, err := in.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		if !s.ProcessCommand(ParseCommand(line)) {
			return nil
		}
	}
}

// ProcessCommand executes one command, returns false to exit
func (s *Session) ProcessCommand(cmd *Command) bool {
	switch cmd.Type {
	case CmdQuit:
		return false

	case CmdNone:

	case CmdMove:
		s.handleMove(cmd)

	case CmdShow:
		s.displayBoard()

	case CmdReset:
		b, err := board.ParseLayout(s.game.InitialLayout())
		if err != nil {
			s.ShowError(err)
			return true
		}
		s.game = game.New(b)
		s.log.Info("Board reset")
		s.displayBoard()

	case CmdLayout:
		s.ShowMessage(s.game.CurrentLayout())

	case CmdHistory:
		s.ShowHistory()

	case CmdColor:
		if len(cmd.Args) < 1 {
			s.ShowMessage(fmt.Sprintf("Usage: color <%s>", strings.Join(display.ThemeNames(), "|")))
			return true
		}
		theme, err := display.LookupTheme(display.ThemeName(cmd.Args[0]), s.tty)
		if err != nil {
			s.ShowError(err)
			return true
		}
		s.sink.SetTheme(theme)
		s.colored = theme.Colored()
		s.ShowMessage(fmt.Sprintf("Color theme set to: %s", cmd.Args[0]))
		s.displayBoard()

	case CmdLabels:
		s.sink.SetLabels(!s.sink.Labels())
		s.ShowMessage(fmt.Sprintf("Labels: %t", s.sink.Labels()))

	case CmdHelp:
		s.ShowHelp()
	}

	return true
}

func (s *Session) handleMove(cmd *Command) {
	var (
		from, to board.Place
		err      error
	)
	switch len(cmd.Args) {
	case 1:
		from, to, err = board.ParseMove(cmd.Args[0])
	case 2:
		if from, err = board.ParsePlace(cmd.Args[0]); err == nil {
			to, err = board.ParsePlace(cmd.Args[1])
		}
	default:
		err = fmt.Errorf("usage: move <from> <to>, e.g. a1a3 or move 0,0 0,2")
	}
	if err != nil {
		s.ShowError(err)
		return
	}

	if err := s.game.Relocate(from, to); err != nil {
		s.log.WithError(err).Warn("Relocation rejected")
		s.ShowError(err)
		return
	}
	s.log.WithFields(log.Fields{"from": from, "to": to}).Debug("Relocated")
	s.displayBoard()
}

// ShowBoard renders the board and writes it followed by a newline
func (s *Session) ShowBoard() error {
	if err := s.sink.Write(s.game.Board().Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out)
	return err
}

func (s *Session) displayBoard() {
	if err := s.ShowBoard(); err != nil {
		s.log.WithError(err).Error("Display failed")
	}
}

func (s *Session) ShowMessage(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) ShowError(err error) {
	s.ShowMessage(display.Colorize(s.colored, display.Red, fmt.Sprintf("Error: %v", err)))
}

func (s *Session) ShowHelp() {
	help := `Commands:
  <from><to>         - Relocate a piece (e.g., a1a3); no chess rules apply
  move <from> <to>   - Same, squares as a1 or x,y (e.g., move 0,0 0,2)
  show               - Print the board
  reset              - Restore the starting layout
  layout             - Print the FEN piece placement
  history            - List relocations since the last reset
  color <theme>      - Set board color theme (auto|off|classic|brown|green|gray)
  labels             - Toggle file and rank labels
  quit/exit          - Exit the program
  help/?             - Show this help message`

	s.ShowMessage(help)
}

func (s *Session) ShowHistory() {
	s.ShowMessage(fmt.Sprintf("Starting layout: %s", s.game.InitialLayout()))
	moves := s.game.Moves()
	for i, snap := range s.game.Snapshots()[1:] {
		line := fmt.Sprintf("%d. %s %s", i+1, moves[i], snap.Piece)
		if !snap.Replaced.IsEmpty() {
			line += fmt.Sprintf(" (replaced %s)", snap.Replaced)
		}
		s.ShowMessage(line)
	}
	s.ShowMessage(fmt.Sprintf("Current layout: %s", s.game.CurrentLayout()))
}

func (s *Session) ShowWelcome() {
	s.ShowMessage(display.Colorize(s.colored, display.Cyan, "Chessboard"))
	s.ShowMessage("Type 'help' for commands")
	s.displayBoard()
}
