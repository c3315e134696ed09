package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"NewsSentiment/internal/aggregate"
	"NewsSentiment/internal/config"
	"NewsSentiment/internal/infrastructure/feed"
	"NewsSentiment/internal/infrastructure/scheduler"
	"NewsSentiment/internal/infrastructure/site"
	"NewsSentiment/internal/logging"
	"NewsSentiment/internal/relevance"
	"NewsSentiment/internal/sentiment"
	"NewsSentiment/internal/usecase"
)

// Application wires configuration to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New validates the configuration and builds a runnable application.
// Any configuration error (threshold ordering, overlapping lexicons,
// unknown policy, non-positive window) aborts here, before any fetching.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	policy, err := relevance.ForConfig(cfg.Relevance.Policy, cfg.Relevance.Keywords)
	if err != nil {
		return nil, fmt.Errorf("configure relevance: %w", err)
	}

	lexicon, err := sentiment.NewLexicon(cfg.Sentiment.Positive, cfg.Sentiment.Negative)
	if err != nil {
		return nil, fmt.Errorf("configure lexicon: %w", err)
	}

	scorer, err := sentiment.NewScorer(
		sentiment.NewSimpleTokenizer(),
		lexicon,
		cfg.Sentiment.Divisor,
		sentiment.Thresholds{
			VeryPositive: cfg.Sentiment.Thresholds.VeryPositive,
			Positive:     cfg.Sentiment.Thresholds.Positive,
			Neutral:      cfg.Sentiment.Thresholds.Neutral,
			Negative:     cfg.Sentiment.Thresholds.Negative,
		},
		baseLogger.With("component", "scorer"),
	)
	if err != nil {
		return nil, fmt.Errorf("configure scorer: %w", err)
	}

	generator, err := site.NewGenerator(cfg.Output.Dir, baseLogger.With("component", "site"))
	if err != nil {
		return nil, fmt.Errorf("configure site generator: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     feed.NewFetcher(nil, cfg.Feeds, baseLogger.With("component", "fetcher")),
		Relevance:  relevance.NewFilter(policy, baseLogger.With("component", "relevance")),
		Scorer:     scorer,
		Aggregator: aggregate.NewAggregator(baseLogger.With("component", "aggregator")),
		Site:       generator,
		MonthsBack: cfg.Window.MonthsBack,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}, nil
}

// Run executes one pipeline cycle, or keeps regenerating on an interval
// when the scheduler is configured.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	interval := a.cfg.Scheduler.IntervalDuration()
	if interval <= 0 {
		return a.pipeline.Run(ctx, time.Now().UTC())
	}

	driver := scheduler.NewIntervalScheduler(interval)
	runner := usecase.NewScheduler(driver, a.pipeline, a.logger.With("component", "scheduler"))

	if err := runner.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	return runner.Stop(context.WithoutCancel(ctx))
}
