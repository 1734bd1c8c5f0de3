package config

import (
	"flag"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	Theme       string   `validate:"required,oneof=auto off classic brown green gray"`
	Layout      string   `validate:"omitempty,max=100"`
	Script      []string `validate:"omitempty,dive,len=4"`
	LogLevel    string   `validate:"required,oneof=debug info warn error"`
	HistoryFile string   `validate:"omitempty,max=255"`
	Labels      bool
	Interactive bool
}

// Default reproduces the demo: rook a1 to a3, then a3 to b5
func Default() Config {
	return Config{
		Theme:       "auto",
		Script:      []string{"a1a3", "a3b5"},
		LogLevel:    "warn",
		HistoryFile: ".chess_history",
	}
}

// Parse fills a Config from command-line arguments
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	script := strings.Join(cfg.Script, ",")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Board color theme (auto|off|classic|brown|green|gray)")
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "Starting FEN piece placement (default standard position)")
	fs.BoolVar(&cfg.Labels, "labels", cfg.Labels, "Print file and rank labels")
	fs.BoolVar(&cfg.Interactive, "i", cfg.Interactive, "Interactive mode instead of the scripted demo")
	fs.StringVar(&script, "script", script, "Comma separated moves for the demo, e.g. a1a3,a3b5")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "Interactive history file (empty disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Script = nil
	for _, step := range strings.Split(script, ",") {
		if step = strings.TrimSpace(step); step != "" {
			cfg.Script = append(cfg.Script, step)
		}
	}

	return cfg, nil
}

// Validate checks field constraints and reports every failure in one error
func (c Config) Validate() error {
	errs := validate.Struct(c)
	if errs == nil {
		return nil
	}
	verrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs
	}

	var details strings.Builder
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param()))
		case "len":
			details.WriteString(fmt.Sprintf("%s must be %s characters", err.Field(), err.Param()))
		case "max":
			if err.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", details.String())
}
