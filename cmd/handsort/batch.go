package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/handsort/internal/batch"
	"github.com/lox/handsort/internal/display"
)

// BatchCmd evaluates every hand in an HCL hand file
type BatchCmd struct {
	File    string `arg:"" type:"existingfile" help:"Path to an HCL hand file"`
	Workers int    `short:"w" help:"Override the number of parallel workers"`
	Strict  bool   `help:"Stop at the first hand that fails"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}

	hf, err := batch.LoadHandFile(cmd.File)
	if err != nil {
		return err
	}
	if err := hf.Validate(); err != nil {
		return fmt.Errorf("invalid hand file: %w", err)
	}

	settings := *hf.Settings
	if cmd.Workers > 0 {
		settings.Workers = cmd.Workers
	}
	if cmd.Strict {
		settings.Strict = true
	}
	logger.Info("Loaded hand file", "file", cmd.File, "hands", len(hf.Hands), "workers", settings.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := batch.NewRunner(logger, settings).Run(ctx, hf.Hands)
	if err != nil {
		return err
	}

	if err := display.Outcomes(os.Stdout, outcomes); err != nil {
		return err
	}

	if failed := batch.Summarize(outcomes).Failed; failed > 0 {
		return fmt.Errorf("%d of %d hands failed", failed, len(outcomes))
	}
	return nil
}
