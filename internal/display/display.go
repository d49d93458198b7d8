package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/handsort/internal/batch"
	"github.com/lox/handsort/poker"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// DisableColor forces plain ASCII output for every style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Card renders a card with its suit symbol, red or black.
func Card(c poker.Card) string {
	if c.Suit().IsRed() {
		return RedCardStyle.Render(c.Pretty())
	}
	return BlackCardStyle.Render(c.Pretty())
}

// Cards renders cards separated by spaces.
func Cards(cards []poker.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, Card(c))
	}
	return strings.Join(parts, " ")
}

// Result renders an evaluated hand as "Category  cards".
func Result(res poker.Result) string {
	return fmt.Sprintf("%s  %s", CategoryStyle.Render(res.Category.String()), Cards(res.Cards))
}

// Outcomes writes a table of batch outcomes followed by a summary line.
func Outcomes(w io.Writer, outcomes []batch.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		HeaderStyle.Render("hand"),
		HeaderStyle.Render("category"),
		HeaderStyle.Render("cards"))

	for _, o := range outcomes {
		switch {
		case o.OK():
			fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Name, CategoryStyle.Render(o.Result.Category.String()), Cards(o.Result.Cards))
		default:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Name, ErrorStyle.Render("error"), InfoStyle.Render(o.Err.Error()))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	summary := batch.Summarize(outcomes)
	_, err := fmt.Fprintf(w, "\n%d hands, %d failed\n", summary.Total, summary.Failed)
	return err
}
