package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"NewsSentiment/internal/aggregate"
	"NewsSentiment/internal/domain"
	"NewsSentiment/internal/ports"
	"NewsSentiment/internal/relevance"
	"NewsSentiment/internal/sentiment"
	"NewsSentiment/internal/window"
)

// PipelineDeps wires all collaborators into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.FeedSource
	Relevance  *relevance.Filter
	Scorer     *sentiment.Scorer
	Aggregator *aggregate.Aggregator
	Site       ports.SiteWriter
	MonthsBack int
	Logger     *slog.Logger
}

// Pipeline implements the fetch → window → relevance → score → aggregate
// → render workflow.
type Pipeline struct {
	source     ports.FeedSource
	relevance  *relevance.Filter
	scorer     *sentiment.Scorer
	aggregator *aggregate.Aggregator
	site       ports.SiteWriter
	monthsBack int
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		relevance:  deps.Relevance,
		scorer:     deps.Scorer,
		aggregator: deps.Aggregator,
		site:       deps.Site,
		monthsBack: deps.MonthsBack,
		logger:     deps.Logger,
	}
}

// Run executes one full cycle anchored at now. The recency cutoff is
// recomputed each run so scheduled reruns keep a sliding window.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	if p.source == nil {
		return nil
	}

	sources, err := p.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch feeds: %w", err)
	}

	var fetched int
	for _, src := range sources {
		fetched += len(src.Articles)
	}
	p.info("feeds fetched", "sources", len(sources), "articles", fetched)

	recency := window.New(now, p.monthsBack)

	var relevant int
	for i := range sources {
		articles := recency.FilterRecent(sources[i].Articles)
		if p.relevance != nil {
			articles = p.relevance.FilterRelevant(articles)
		}
		if p.scorer != nil {
			articles = p.scorer.AnalyzeAll(articles)
		}
		sources[i].Articles = articles
		relevant += len(articles)
	}
	p.info("articles filtered and scored", "relevant", relevant, "cutoff", recency.Cutoff().Format("2006-01-02"))

	var ranking []domain.SourceStatistics
	if p.aggregator != nil {
		ranking = aggregate.RankSources(p.aggregator.Summarize(sources))
	}

	if p.site == nil {
		return nil
	}

	if err := p.site.WriteSite(ctx, sources, ranking); err != nil {
		return fmt.Errorf("write site: %w", err)
	}

	return nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
