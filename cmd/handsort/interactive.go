package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/handsort/internal/tui"
)

// InteractiveCmd starts the interactive evaluator
type InteractiveCmd struct {
	LogFile string `help:"Write logs to this file while the TUI is running (discarded otherwise)"`
}

func (cmd *InteractiveCmd) Run(g *Globals) error {
	var w io.Writer = io.Discard
	var f *os.File
	if cmd.LogFile != "" {
		var err error
		f, err = os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		w = f
	}

	logger, err := g.LoggerTo(w)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return err
	}
	if f != nil {
		defer func() {
			if err := f.Close(); err != nil {
				logger.Error("Failed to close log file", "error", err)
			}
		}()
	}

	logger.Info("Starting interactive mode")
	return tui.Run(logger)
}
