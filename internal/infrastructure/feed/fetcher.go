package feed

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"NewsSentiment/internal/config"
	"NewsSentiment/internal/domain"
	"NewsSentiment/internal/ports"
)

// Fetcher retrieves and parses the configured RSS/Atom feeds. A failing
// feed is logged and contributes an empty article list for its source;
// the pipeline never sees per-feed errors.
type Fetcher struct {
	client    *http.Client
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	feeds     []config.FeedConfig
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.FeedSource = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; a nil client gets a 20s timeout default.
func NewFetcher(client *http.Client, feeds []config.FeedConfig, log *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Fetcher{
		client:    client,
		parser:    gofeed.NewParser(),
		sanitizer: bluemonday.StrictPolicy(),
		feeds:     feeds,
		logger:    log,
		now:       time.Now,
	}
}

// FetchAll walks the configured feeds in order and returns one
// SourceArticles entry per feed, in the same order.
func (f *Fetcher) FetchAll(ctx context.Context) ([]domain.SourceArticles, error) {
	results := make([]domain.SourceArticles, 0, len(f.feeds))
	for _, fc := range f.feeds {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fetch feeds: %w", err)
		}

		articles, err := f.fetchFeed(ctx, fc)
		if err != nil {
			f.warn("fetch feed failed", "source", fc.Name, "error", err)
			articles = []domain.Article{}
		}
		results = append(results, domain.SourceArticles{Source: fc.Name, Articles: articles})
	}
	return results, nil
}

func (f *Fetcher) fetchFeed(ctx context.Context, fc config.FeedConfig) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fc.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsSentiment/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, f.toArticle(item, fc.Name))
	}

	f.debug("feed parsed", "source", fc.Name, "articles", len(articles))
	return articles, nil
}

// toArticle normalizes one feed item. Entries without a parseable
// published or updated timestamp fall back to "now" in UTC before the
// Article is constructed.
func (f *Fetcher) toArticle(item *gofeed.Item, source string) domain.Article {
	published := f.now().UTC()
	switch {
	case item.PublishedParsed != nil:
		published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		published = *item.UpdatedParsed
	}

	description := item.Description
	if description == "" {
		description = item.Content
	}
	description = strings.TrimSpace(html.UnescapeString(f.sanitizer.Sanitize(description)))

	return domain.NewArticle(item.Title, item.Link, published, description, source)
}

func (f *Fetcher) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *Fetcher) warn(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}
