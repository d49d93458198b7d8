package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/handsort/poker"
	"golang.org/x/sync/errgroup"
)

// ErrUnexpectedCategory marks a hand whose category differs from its expect attribute.
var ErrUnexpectedCategory = errors.New("unexpected category")

// Outcome is the evaluation of one batch entry
type Outcome struct {
	Name   string
	Input  string
	Result poker.Result
	Err    error
}

// OK reports whether the entry evaluated cleanly
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Runner evaluates the hands of a batch file in parallel.
type Runner struct {
	logger   *log.Logger
	settings Settings
}

// NewRunner creates a runner with the given settings
func NewRunner(logger *log.Logger, settings Settings) *Runner {
	if settings.Workers <= 0 {
		settings.Workers = DefaultSettings().Workers
	}
	return &Runner{
		logger:   logger.WithPrefix("batch"),
		settings: settings,
	}
}

// Run evaluates every entry and returns outcomes in input order. Per-hand
// failures are reported on the outcome; in strict mode the first failure
// also aborts the batch and is returned.
func (r *Runner) Run(ctx context.Context, hands []HandEntry) ([]Outcome, error) {
	outcomes := make([]Outcome, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.settings.Workers)

	r.logger.Debug("Evaluating batch", "hands", len(hands), "workers", r.settings.Workers)

	for i, entry := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcomes[i] = evaluateEntry(entry)
			if err := outcomes[i].Err; err != nil {
				r.logger.Warn("Hand failed", "hand", entry.Name, "error", err)
				if r.settings.Strict {
					return fmt.Errorf("hand %q: %w", entry.Name, err)
				}
				return nil
			}

			r.logger.Debug("Hand evaluated",
				"hand", entry.Name,
				"category", outcomes[i].Result.Category,
				"cards", poker.FormatCards(outcomes[i].Result.Cards))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func evaluateEntry(entry HandEntry) Outcome {
	out := Outcome{Name: entry.Name, Input: entry.Cards}

	cards, err := poker.ParseCards(entry.Cards)
	if err != nil {
		out.Err = err
		return out
	}

	res, err := poker.Evaluate(cards...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res

	if entry.Expect != "" {
		want, err := poker.ParseCategory(entry.Expect)
		if err != nil {
			out.Err = err
			return out
		}
		if want != res.Category {
			out.Err = fmt.Errorf("%w: got %s, want %s", ErrUnexpectedCategory, res.Category, want)
		}
	}

	return out
}

// Summary counts outcomes per category along with failures
type Summary struct {
	Total      int
	Failed     int
	Categories map[poker.Category]int
}

// Summarize tallies a set of outcomes
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Total:      len(outcomes),
		Categories: make(map[poker.Category]int),
	}
	for _, o := range outcomes {
		if !o.OK() {
			s.Failed++
			// A category mismatch still has a valid result.
			if !errors.Is(o.Err, ErrUnexpectedCategory) {
				continue
			}
		}
		s.Categories[o.Result.Category]++
	}
	return s
}
