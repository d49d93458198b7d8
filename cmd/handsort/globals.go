package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/handsort/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level" default:"warn" enum:"debug,info,warn,error"`
	NoColor  bool             `help:"Disable colored output"`
}

// Logger builds the command logger on stderr and applies output settings
func (g *Globals) Logger() (*log.Logger, error) {
	return g.LoggerTo(os.Stderr)
}

// LoggerTo is like Logger but writes log output to w
func (g *Globals) LoggerTo(w io.Writer) (*log.Logger, error) {
	if g.NoColor {
		display.DisableColor()
	}
	return setupLogger(w, g.LogLevel)
}

// setupLogger configures charmbracelet/log with timestamps on w
func setupLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "handsort",
	}), nil
}
