package cli

import "strings"

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdShow
	CmdReset
	CmdLayout
	CmdHistory
	CmdColor
	CmdLabels
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand maps one input line to a command. Anything unrecognised is
// treated as a move.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "move", "m":
		return &Command{Type: CmdMove, Args: args, Raw: input}
	case "show", "s":
		return &Command{Type: CmdShow}
	case "reset":
		return &Command{Type: CmdReset}
	case "layout", "fen":
		return &Command{Type: CmdLayout}
	case "history", "h":
		return &Command{Type: CmdHistory}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "labels":
		return &Command{Type: CmdLabels}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit", "x":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}
