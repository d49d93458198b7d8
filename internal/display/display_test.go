package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lox/handsort/internal/batch"
	"github.com/lox/handsort/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	DisableColor()
}

func TestResult(t *testing.T) {
	res, err := poker.Evaluate(poker.MustParseCards("2s 3s 4s 5h Ah")...)
	require.NoError(t, err)

	assert.Equal(t, "Straight  5♥ 4♠ 3♠ 2♠ A♥", Result(res))
}

func TestOutcomes(t *testing.T) {
	res, err := poker.Evaluate(poker.MustParseCards("Kd Kh 9h 4c 2s")...)
	require.NoError(t, err)

	outcomes := []batch.Outcome{
		{Name: "pair", Result: res},
		{Name: "bad", Err: errors.New("invalid card")},
	}

	var buf bytes.Buffer
	require.NoError(t, Outcomes(&buf, outcomes))

	out := buf.String()
	assert.Contains(t, out, "hand")
	assert.Contains(t, out, "Pair")
	assert.Contains(t, out, "K♦ K♥ 9♥ 4♣ 2♠")
	assert.Contains(t, out, "invalid card")
	assert.Contains(t, out, "2 hands, 1 failed")
}
