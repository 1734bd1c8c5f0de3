// Package main draws a chessboard in the terminal and relocates pieces on it,
// either from a scripted demo or interactively.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"chessboard/internal/board"
	"chessboard/internal/cli"
	"chessboard/internal/config"
	"chessboard/internal/display"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger.SetLevel(level)

	b := board.New()
	if cfg.Layout != "" {
		if b, err = board.ParseLayout(cfg.Layout); err != nil {
			logger.WithError(err).Fatal("Failed to load layout")
		}
	}

	theme, err := display.LookupTheme(display.ThemeName(cfg.Theme), os.Stdout)
	if err != nil {
		logger.WithError(err).Fatal("Failed to select theme")
	}
	sink := display.NewSink(os.Stdout, theme)
	sink.SetLabels(cfg.Labels)

	session := cli.New(b, sink, os.Stdout, logger)
	session.SetTerminal(os.Stdout)
	session.SetColored(theme.Colored())

	if !cfg.Interactive {
		if err := session.RunScript(cfg.Script); err != nil {
			logger.WithError(err).Error("Demo aborted")
			os.Exit(1)
		}
		return
	}

	rl, err := cli.NewReadline(cfg.HistoryFile, theme.Colored())
	if err != nil {
		logger.WithError(err).Fatal("Failed to start line editor")
	}
	defer rl.Close()

	if err := session.Run(rl); err != nil {
		logger.WithError(err).Error("Session ended")
	}
}
