package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsSentiment/internal/config"
)

func TestNewWithDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Load()
	cfg.Output.Dir = t.TempDir()

	application, err := New(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, application.pipeline)
}

func TestNewRejectsUnorderedThresholds(t *testing.T) {
	t.Parallel()

	cfg := config.Load()
	cfg.Output.Dir = t.TempDir()
	cfg.Sentiment.Thresholds.VeryPositive = -0.9

	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, "thresholds")
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	cfg := config.Load()
	cfg.Output.Dir = t.TempDir()
	cfg.Relevance.Policy = "ml-classifier"

	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, "policy")
}

func TestNewRejectsOverlappingLexicons(t *testing.T) {
	t.Parallel()

	cfg := config.Load()
	cfg.Output.Dir = t.TempDir()
	cfg.Sentiment.Positive = append(cfg.Sentiment.Positive, "crisis")

	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, "polarity")
}

func TestNewRejectsInvalidWindow(t *testing.T) {
	t.Parallel()

	cfg := config.Load()
	cfg.Output.Dir = t.TempDir()
	cfg.Window.MonthsBack = 0

	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, "monthsBack")
}
