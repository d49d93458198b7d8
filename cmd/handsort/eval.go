package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lox/handsort/internal/display"
	"github.com/lox/handsort/poker"
)

// EvalCmd evaluates a single hand given on the command line
type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Kd 10h 10c 2s' or AsKd10h10c2s"`
	JSON  bool     `help:"Print the result as JSON"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	logger, err := g.Logger()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}
	logger.Debug("Parsed cards", "cards", poker.FormatCards(cards))

	res, err := poker.Evaluate(cards...)
	if err != nil {
		return err
	}
	logger.Info("Evaluated hand", "category", res.Category, "cards", poker.FormatCards(res.Cards))

	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Println(display.Result(res))
	return nil
}
