package batch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/handsort/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `
settings {
  workers = 2
}

hand "royal" {
  cards  = "As Ks Qs Js 10s"
  expect = "Royal Flush"
}

hand "wheel" {
  cards = "2s 3s 4s 5h Ah"
}

hand "boat" {
  cards  = "5s6s6h5h5c"
  expect = "full-house"
}
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestParseHandFile(t *testing.T) {
	hf, err := ParseHandFile([]byte(sampleFile), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, hf.Validate())

	assert.Equal(t, 2, hf.Settings.Workers)
	assert.False(t, hf.Settings.Strict)
	require.Len(t, hf.Hands, 3)
	assert.Equal(t, "royal", hf.Hands[0].Name)
	assert.Equal(t, "Royal Flush", hf.Hands[0].Expect)
	assert.Equal(t, "", hf.Hands[1].Expect)
}

func TestParseHandFileDefaults(t *testing.T) {
	hf, err := ParseHandFile([]byte(`hand "a" { cards = "As Ks Qs Js 10s" }`), "a.hcl")
	require.NoError(t, err)
	require.NotNil(t, hf.Settings)
	assert.Equal(t, DefaultSettings().Workers, hf.Settings.Workers)
	assert.Positive(t, hf.Settings.Workers)
}

func TestParseHandFileErrors(t *testing.T) {
	_, err := ParseHandFile([]byte(`hand "a" {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = ParseHandFile([]byte(`hand "a" { expect = "Pair" }`), "missing.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "no hands", src: `settings { workers = 1 }`, wantErr: "at least one hand"},
		{
			name:    "duplicate",
			src:     `hand "a" { cards = "As" } ` + "\n" + `hand "a" { cards = "Ks" }`,
			wantErr: "more than once",
		},
		{
			name: "bad expect",
			src: `
hand "a" {
  cards  = "As"
  expect = "Five Aces"
}`,
			wantErr: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hf, err := ParseHandFile([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, hf.Validate(), tt.wantErr)
		})
	}
}

func TestLoadHandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	hf, err := LoadHandFile(path)
	require.NoError(t, err)
	assert.Len(t, hf.Hands, 3)

	_, err = LoadHandFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestRunnerKeepsOrder(t *testing.T) {
	hf, err := ParseHandFile([]byte(sampleFile), "sample.hcl")
	require.NoError(t, err)

	outcomes, err := NewRunner(quietLogger(), *hf.Settings).Run(context.Background(), hf.Hands)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "royal", outcomes[0].Name)
	assert.Equal(t, poker.RoyalFlush, outcomes[0].Result.Category)

	assert.Equal(t, "wheel", outcomes[1].Name)
	assert.Equal(t, poker.Straight, outcomes[1].Result.Category)
	assert.Equal(t, "5h 4s 3s 2s Ah", poker.FormatCards(outcomes[1].Result.Cards))

	assert.Equal(t, poker.FullHouse, outcomes[2].Result.Category)
	for _, o := range outcomes {
		assert.True(t, o.OK(), o.Name)
	}
}

func TestRunnerReportsFailures(t *testing.T) {
	hands := []HandEntry{
		{Name: "ok", Cards: "2s 3s 4s 2h 5h"},
		{Name: "short", Cards: "2s 3s 4s"},
		{Name: "garbage", Cards: "Zz"},
		{Name: "mismatch", Cards: "2s 3s 4s 2h 5h", Expect: "Flush"},
		{Name: "five aces", Cards: "As Ah Ad Ac As"},
	}

	outcomes, err := NewRunner(quietLogger(), Settings{Workers: 3}).Run(context.Background(), hands)
	require.NoError(t, err)

	assert.True(t, outcomes[0].OK())
	assert.ErrorIs(t, outcomes[1].Err, poker.ErrWrongCardCount)
	assert.ErrorIs(t, outcomes[2].Err, poker.ErrInvalidCard)
	assert.ErrorIs(t, outcomes[3].Err, ErrUnexpectedCategory)
	assert.Equal(t, poker.Pair, outcomes[3].Result.Category)
	assert.ErrorIs(t, outcomes[4].Err, poker.ErrNoCategory)

	summary := Summarize(outcomes)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Failed)
	assert.Equal(t, 2, summary.Categories[poker.Pair])
}

func TestRunnerStrict(t *testing.T) {
	hands := []HandEntry{
		{Name: "short", Cards: "2s 3s 4s"},
	}

	_, err := NewRunner(quietLogger(), Settings{Workers: 1, Strict: true}).Run(context.Background(), hands)
	assert.ErrorIs(t, err, poker.ErrWrongCardCount)
	assert.ErrorContains(t, err, `hand "short"`)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hands := []HandEntry{{Name: "a", Cards: "As Ks Qs Js 10s"}}
	_, err := NewRunner(quietLogger(), Settings{Workers: 1}).Run(ctx, hands)
	assert.ErrorIs(t, err, context.Canceled)
}
