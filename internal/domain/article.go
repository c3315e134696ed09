package domain

import "time"

// SentimentLabel buckets a bounded sentiment score into one of five ordered bands.
type SentimentLabel string

const (
	LabelVeryNegative SentimentLabel = "very_negative"
	LabelNegative     SentimentLabel = "negative"
	LabelNeutral      SentimentLabel = "neutral"
	LabelPositive     SentimentLabel = "positive"
	LabelVeryPositive SentimentLabel = "very_positive"
)

// Labels lists every sentiment label from most negative to most positive.
var Labels = []SentimentLabel{
	LabelVeryNegative,
	LabelNegative,
	LabelNeutral,
	LabelPositive,
	LabelVeryPositive,
}

// Article is the normalized representation of a single feed entry.
// PublishedAt is always UTC; SentimentScore and SentimentLabel stay zero
// until the scorer runs, and are written exactly once.
type Article struct {
	Title       string
	Link        string
	PublishedAt time.Time
	Description string
	Source      string

	SentimentScore float64
	SentimentLabel SentimentLabel
}

// NewArticle builds an Article with the published instant converted to UTC.
// A zoned instant keeps its absolute moment; inputs parsed from zone-less
// strings arrive already carrying UTC wall-clock values upstream, so they
// pass through unshifted.
func NewArticle(title, link string, published time.Time, description, source string) Article {
	return Article{
		Title:       title,
		Link:        link,
		PublishedAt: published.UTC(),
		Description: description,
		Source:      source,
	}
}

// Scored reports whether the sentiment scorer has processed this article.
func (a Article) Scored() bool {
	return a.SentimentLabel != ""
}

// FullText joins title and description with a single space, the exact form
// consumed by the relevance filter and the scorer.
func (a Article) FullText() string {
	return a.Title + " " + a.Description
}

// SourceArticles pairs a source name with its articles. The pipeline keeps
// these in configured feed order so downstream ranking stays deterministic.
type SourceArticles struct {
	Source   string
	Articles []Article
}

// SourceStatistics summarizes one source's scored articles. A zero
// ArticleCount marks a source with no relevant coverage in the window;
// its score fields are meaningless in that case and LabelCounts is nil.
type SourceStatistics struct {
	Source       string
	ArticleCount int
	AverageScore float64
	MinScore     float64
	MaxScore     float64
	LabelCounts  map[SentimentLabel]int
}

// HasData reports whether any article backs these statistics.
func (s SourceStatistics) HasData() bool {
	return s.ArticleCount > 0
}
