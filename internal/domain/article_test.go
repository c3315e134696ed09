package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticleNormalizesZonedInstant(t *testing.T) {
	t.Parallel()

	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	published := time.Date(2025, time.June, 1, 20, 0, 0, 0, shanghai)
	article := NewArticle("t", "https://example.com", published, "d", "src")

	assert.Equal(t, time.UTC, article.PublishedAt.Location())
	assert.True(t, article.PublishedAt.Equal(published), "conversion must preserve the absolute instant")
	assert.Equal(t, 12, article.PublishedAt.Hour())
}

func TestNewArticleKeepsZonelessInputAsUTC(t *testing.T) {
	t.Parallel()

	// a zone-less source string parses to a UTC wall-clock value upstream
	parsed, err := time.Parse("2006-01-02 15:04", "2025-06-01 09:30")
	require.NoError(t, err)

	article := NewArticle("t", "https://example.com", parsed, "d", "src")

	assert.Equal(t, 9, article.PublishedAt.Hour())
	assert.Equal(t, 30, article.PublishedAt.Minute())
	assert.Equal(t, time.UTC, article.PublishedAt.Location())
}

func TestArticleScored(t *testing.T) {
	t.Parallel()

	article := NewArticle("t", "l", time.Now(), "d", "src")
	assert.False(t, article.Scored())

	article.SentimentScore = 0.25
	article.SentimentLabel = LabelPositive
	assert.True(t, article.Scored())
}

func TestArticleFullText(t *testing.T) {
	t.Parallel()

	article := NewArticle("China announces reforms", "l", time.Now(), "New policies in China", "src")
	assert.Equal(t, "China announces reforms New policies in China", article.FullText())
}

func TestSourceStatisticsHasData(t *testing.T) {
	t.Parallel()

	assert.False(t, SourceStatistics{Source: "empty"}.HasData())
	assert.True(t, SourceStatistics{Source: "full", ArticleCount: 3}.HasData())
}
