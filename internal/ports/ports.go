package ports

import (
	"context"
	"time"

	"NewsSentiment/internal/domain"
)

// FeedSource pulls raw entries for every configured feed. A failing feed
// yields an empty article list for its source, never an error into the
// pipeline; the returned error is reserved for conditions that invalidate
// the whole run (e.g. a cancelled context).
type FeedSource interface {
	FetchAll(ctx context.Context) ([]domain.SourceArticles, error)
}

// SiteWriter renders the filtered, scored articles and the cross-source
// ranking to their presentation form.
type SiteWriter interface {
	WriteSite(ctx context.Context, sources []domain.SourceArticles, ranking []domain.SourceStatistics) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
