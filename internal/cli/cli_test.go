package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chessboard/internal/board"
	"chessboard/internal/core"
	"chessboard/internal/display"
)

type scriptedInput struct {
	lines []string
	err   error
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newSession(t *testing.T) (*Session, *bytes.Buffer, *test.Hook) {
	t.Helper()
	theme, err := display.LookupTheme(display.ThemeOff, nil)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	var out bytes.Buffer
	s := New(board.New(), display.NewSink(&out, theme), &out, logger)
	return s, &out, hook
}

const startBoard = "RNBQKBNR\nPPPPPPPP\n        \n        \n        \n        \nPPPPPPPP\nRNBQKBNR\n"

func TestRunScriptDemo(t *testing.T) {
	s, out, _ := newSession(t)
	require.NoError(t, s.RunScript([]string{"a1a3", "a3b5"}))

	second := "RNBQKBNR\nPPPPPPPP\n        \n        \n        \nR       \nPPPPPPPP\n NBQKBNR\n"
	third := "RNBQKBNR\nPPPPPPPP\n        \n R      \n        \n        \nPPPPPPPP\n NBQKBNR\n"
	assert.Equal(t, startBoard+second+third, out.String())

	rook, _ := s.Board().At(board.Place{X: 1, Y: 4})
	assert.Equal(t, core.Rook(core.PlayerRed), rook)
}

func TestRunScriptStopsOnError(t *testing.T) {
	s, out, hook := newSession(t)
	err := s.RunScript([]string{"a4a5", "a1a3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNoPieceToMove))
	assert.Equal(t, startBoard, out.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
}

func TestRunScriptBadStep(t *testing.T) {
	s, _, _ := newSession(t)
	err := s.RunScript([]string{"a1"})
	assert.Error(t, err)
}

func TestRunCommands(t *testing.T) {
	s, out, hook := newSession(t)
	in := &scriptedInput{lines: []string{"", "a1a3", "move 0,2 1,4", "a1a1", "layout", "quit", "h1h3"}}
	require.NoError(t, s.Run(in))

	output := out.String()
	assert.Contains(t, output, "Error: invalid move")
	assert.Contains(t, output, "rnbqkbnr/pppppppp/8/1R6/8/8/PPPPPPPP/1NBQKBNR")
	assert.Equal(t, []string{"h1h3"}, in.lines, "input after quit must not be read")

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel && e.Message == "Relocation rejected" {
			warned = true
			assert.NotEmpty(t, e.Data["session"])
		}
	}
	assert.True(t, warned)
}

func TestRunEndOfInput(t *testing.T) {
	s, _, _ := newSession(t)
	assert.NoError(t, s.Run(&scriptedInput{lines: []string{"show"}}))
}

func TestRunReadError(t *testing.T) {
	s, _, _ := newSession(t)
	boom := errors.New("boom")
	assert.ErrorIs(t, s.Run(&scriptedInput{err: boom}), boom)
}

func TestReset(t *testing.T) {
	s, _, _ := newSession(t)
	assert.True(t, s.ProcessCommand(ParseCommand("e2e4")))
	assert.NotEqual(t, board.StartingLayout, s.Board().Layout())

	assert.True(t, s.ProcessCommand(ParseCommand("reset")))
	assert.Equal(t, board.StartingLayout, s.Board().Layout())
}

func TestHistory(t *testing.T) {
	s, out, _ := newSession(t)
	s.ProcessCommand(ParseCommand("a1a3"))
	s.ProcessCommand(ParseCommand("a3a7"))
	out.Reset()
	s.ProcessCommand(ParseCommand("history"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Starting layout: "+board.StartingLayout, lines[0])
	assert.Equal(t, "1. a1a3 red rook", lines[1])
	assert.Equal(t, "2. a3a7 red rook (replaced blue pawn)", lines[2])
	assert.Equal(t, "Current layout: rnbqkbnr/Rppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR", lines[3])

	s.ProcessCommand(ParseCommand("reset"))
	out.Reset()
	s.ProcessCommand(ParseCommand("history"))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestEmptySource(t *testing.T) {
	s, out, _ := newSession(t)
	s.ProcessCommand(ParseCommand("d4d5"))
	assert.Contains(t, out.String(), "no piece to move")
	assert.Equal(t, board.StartingLayout, s.Board().Layout())
}

func TestColorAndLabels(t *testing.T) {
	s, out, _ := newSession(t)
	s.ProcessCommand(ParseCommand("color neon"))
	assert.Contains(t, out.String(), "invalid theme")

	out.Reset()
	s.ProcessCommand(ParseCommand("color classic"))
	assert.Contains(t, out.String(), "\x1b[47;34mR")

	out.Reset()
	s.ProcessCommand(ParseCommand("color off"))
	s.ProcessCommand(ParseCommand("labels"))
	s.ProcessCommand(ParseCommand("show"))
	assert.Contains(t, out.String(), "8 RNBQKBNR 8")
}

func TestBadMoveInput(t *testing.T) {
	s, out, _ := newSession(t)
	s.ProcessCommand(ParseCommand("move a1"))
	s.ProcessCommand(ParseCommand("zz"))
	assert.Equal(t, 2, strings.Count(out.String(), "Error:"))
	assert.Equal(t, board.StartingLayout, s.Board().Layout())
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want CommandType
		args []string
	}{
		{"", CmdNone, nil},
		{"   ", CmdNone, nil},
		{"a1a3", CmdMove, []string{"a1a3"}},
		{"move a1 a3", CmdMove, []string{"a1", "a3"}},
		{"0,0 0,2", CmdMove, []string{"0,0", "0,2"}},
		{"show", CmdShow, nil},
		{"reset", CmdReset, nil},
		{"fen", CmdLayout, nil},
		{"color gray", CmdColor, []string{"gray"}},
		{"labels", CmdLabels, nil},
		{"history", CmdHistory, nil},
		{"?", CmdHelp, nil},
		{"exit", CmdQuit, nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cmd := ParseCommand(tt.in)
			assert.Equal(t, tt.want, cmd.Type)
			if tt.args != nil {
				assert.Equal(t, tt.args, cmd.Args)
			}
		})
	}
}
