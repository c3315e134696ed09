package aggregate

import (
	"log/slog"
	"math"
	"slices"
	"sort"

	"NewsSentiment/internal/domain"
)

// Aggregator derives per-source statistics from scored articles.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator wires an optional diagnostics logger.
func NewAggregator(log *slog.Logger) *Aggregator {
	return &Aggregator{logger: log}
}

// Summarize computes statistics for each source in input order. Sources
// without articles are kept as explicit no-data entries so callers can
// render "no relevant coverage this period" instead of dropping the
// outlet. Score aggregates are rounded to three decimals.
func (g *Aggregator) Summarize(sources []domain.SourceArticles) []domain.SourceStatistics {
	stats := make([]domain.SourceStatistics, 0, len(sources))
	for _, src := range sources {
		stats = append(stats, summarizeSource(src))
	}

	if g.logger != nil {
		g.logger.Debug("aggregated sources", "sources", len(stats))
	}
	return stats
}

func summarizeSource(src domain.SourceArticles) domain.SourceStatistics {
	if len(src.Articles) == 0 {
		return domain.SourceStatistics{Source: src.Source}
	}

	var sum float64
	minScore := math.Inf(1)
	maxScore := math.Inf(-1)
	labels := make(map[domain.SentimentLabel]int)

	for _, article := range src.Articles {
		score := article.SentimentScore
		sum += score
		minScore = math.Min(minScore, score)
		maxScore = math.Max(maxScore, score)
		if article.Scored() {
			labels[article.SentimentLabel]++
		}
	}

	return domain.SourceStatistics{
		Source:       src.Source,
		ArticleCount: len(src.Articles),
		AverageScore: round3(sum / float64(len(src.Articles))),
		MinScore:     round3(minScore),
		MaxScore:     round3(maxScore),
		LabelCounts:  labels,
	}
}

// RankSources orders summaries by average score descending. Ties keep
// their input order; no-data sources follow all data-bearing ones,
// also in input order.
func RankSources(stats []domain.SourceStatistics) []domain.SourceStatistics {
	ranked := slices.Clone(stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.HasData() != b.HasData() {
			return a.HasData()
		}
		return a.AverageScore > b.AverageScore
	})
	return ranked
}

// RankArticles orders articles by sentiment score descending without
// mutating the input. Unscored articles rank as if they scored zero;
// ties keep their original order.
func RankArticles(articles []domain.Article) []domain.Article {
	ranked := slices.Clone(articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return effectiveScore(ranked[i]) > effectiveScore(ranked[j])
	})
	return ranked
}

func effectiveScore(a domain.Article) float64 {
	if !a.Scored() {
		return 0
	}
	return a.SentimentScore
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
