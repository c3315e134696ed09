package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsSentiment/internal/config"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>World News</title>
    <link>https://example.com</link>
    <item>
      <title>China announces major economic reforms</title>
      <link>https://example.com/1</link>
      <description>&lt;p&gt;New policies in &lt;b&gt;China&lt;/b&gt;&lt;/p&gt;</description>
      <pubDate>Mon, 02 Jun 2025 08:30:00 +0800</pubDate>
    </item>
    <item>
      <title>Undated story</title>
      <link>https://example.com/2</link>
      <description>No timestamp here</description>
    </item>
  </channel>
</rss>`

func TestFetchAllParsesFeed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), []config.FeedConfig{
		{Name: "Example", URL: server.URL},
	}, nil)

	fallback := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	fetcher.now = func() time.Time { return fallback }

	sources, err := fetcher.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "Example", sources[0].Source)

	articles := sources[0].Articles
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "China announces major economic reforms", first.Title)
	assert.Equal(t, "https://example.com/1", first.Link)
	assert.Equal(t, "New policies in China", first.Description, "HTML tags stripped from description")
	assert.Equal(t, time.UTC, first.PublishedAt.Location())
	// 08:30+08:00 is 00:30 UTC
	assert.True(t, first.PublishedAt.Equal(time.Date(2025, time.June, 2, 0, 30, 0, 0, time.UTC)))

	second := articles[1]
	assert.True(t, second.PublishedAt.Equal(fallback), "missing pubDate falls back to now")
}

func TestFetchAllFailingFeedYieldsEmptySource(t *testing.T) {
	t.Parallel()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer healthy.Close()

	fetcher := NewFetcher(nil, []config.FeedConfig{
		{Name: "Broken", URL: broken.URL},
		{Name: "Healthy", URL: healthy.URL},
	}, nil)

	sources, err := fetcher.FetchAll(context.Background())
	require.NoError(t, err, "per-feed failures must not surface as errors")
	require.Len(t, sources, 2)

	assert.Equal(t, "Broken", sources[0].Source)
	assert.Empty(t, sources[0].Articles)

	assert.Equal(t, "Healthy", sources[1].Source)
	assert.Len(t, sources[1].Articles, 2)
}

func TestFetchAllUnparseableBodyYieldsEmptySource(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer server.Close()

	fetcher := NewFetcher(nil, []config.FeedConfig{{Name: "Garbled", URL: server.URL}}, nil)

	sources, err := fetcher.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Empty(t, sources[0].Articles)
}

func TestFetchAllHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	fetcher := NewFetcher(nil, []config.FeedConfig{{Name: "Example", URL: "http://127.0.0.1:0"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.FetchAll(ctx)
	assert.Error(t, err)
}
