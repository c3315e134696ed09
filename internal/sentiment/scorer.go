package sentiment

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"NewsSentiment/internal/domain"
)

// Thresholds maps score bands to the five sentiment labels. The four
// boundaries must be strictly descending; together with the unbounded
// lowest band they partition the whole score range.
type Thresholds struct {
	VeryPositive float64
	Positive     float64
	Neutral      float64
	Negative     float64
}

// Validate rejects threshold tables that are not strictly descending.
func (t Thresholds) Validate() error {
	if t.VeryPositive > t.Positive && t.Positive > t.Neutral && t.Neutral > t.Negative {
		return nil
	}
	return fmt.Errorf("sentiment thresholds must be strictly descending, got %.3f, %.3f, %.3f, %.3f",
		t.VeryPositive, t.Positive, t.Neutral, t.Negative)
}

// Label returns the band containing the score, checked top-down.
func (t Thresholds) Label(score float64) domain.SentimentLabel {
	switch {
	case score >= t.VeryPositive:
		return domain.LabelVeryPositive
	case score >= t.Positive:
		return domain.LabelPositive
	case score >= t.Neutral:
		return domain.LabelNeutral
	case score >= t.Negative:
		return domain.LabelNegative
	default:
		return domain.LabelVeryNegative
	}
}

// Lexicon holds the disjoint positive and negative polarity term sets.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexicon lower-cases both term sets and rejects overlapping entries.
// Empty sets are allowed; scoring then degrades to a constant zero.
func NewLexicon(positive, negative []string) (Lexicon, error) {
	lex := Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, term := range positive {
		lex.positive[strings.ToLower(term)] = struct{}{}
	}
	for _, term := range negative {
		term = strings.ToLower(term)
		if _, ok := lex.positive[term]; ok {
			return Lexicon{}, fmt.Errorf("lexicon term %q appears in both polarity sets", term)
		}
		lex.negative[term] = struct{}{}
	}
	return lex, nil
}

// Scorer assigns bounded lexical sentiment scores to article text.
type Scorer struct {
	tokenizer  Tokenizer
	lexicon    Lexicon
	divisor    float64
	thresholds Thresholds
	logger     *slog.Logger
}

// NewScorer validates the configuration and wires the tokenizer capability.
// A nil tokenizer falls back to the built-in splitter. Misconfigured
// thresholds or a non-positive divisor abort startup rather than risk
// misclassifying every article.
func NewScorer(tk Tokenizer, lex Lexicon, divisor float64, th Thresholds, log *slog.Logger) (*Scorer, error) {
	if divisor <= 0 {
		return nil, fmt.Errorf("sentiment divisor must be positive, got %g", divisor)
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	if tk == nil {
		tk = NewSimpleTokenizer()
	}
	return &Scorer{
		tokenizer:  tk,
		lexicon:    lex,
		divisor:    divisor,
		thresholds: th,
		logger:     log,
	}, nil
}

// Score tallies polarity-bearing tokens and normalizes the tally by
// max(n*divisor, 1), where n counts meaningful tokens. The floor keeps
// very short texts from exploding the ratio. The result is clamped to
// [-1, 1]; text with no meaningful tokens scores exactly 0.
func (s *Scorer) Score(text string) float64 {
	var tally, meaningful int
	for _, token := range s.tokenizer.Tokenize(text) {
		if s.tokenizer.IsStopWord(token) {
			continue
		}
		meaningful++

		word := strings.ToLower(token)
		if _, ok := s.lexicon.positive[word]; ok {
			tally++
		} else if _, ok := s.lexicon.negative[word]; ok {
			tally--
		}
	}

	if meaningful == 0 {
		return 0
	}

	raw := float64(tally) / math.Max(float64(meaningful)*s.divisor, 1)
	return math.Max(-1, math.Min(1, raw))
}

// Label maps a score onto the configured threshold table.
func (s *Scorer) Label(score float64) domain.SentimentLabel {
	return s.thresholds.Label(score)
}

// AnalyzeAll scores every article in place and returns the slice for
// chaining. The stored score is rounded to three decimals, half away from
// zero; the label is derived from the unrounded score so band boundaries
// are never crossed by rounding.
func (s *Scorer) AnalyzeAll(articles []domain.Article) []domain.Article {
	for i := range articles {
		score := s.Score(articles[i].FullText())
		articles[i].SentimentScore = round3(score)
		articles[i].SentimentLabel = s.thresholds.Label(score)
	}

	if s.logger != nil {
		s.logger.Debug("scored articles", "count", len(articles))
	}
	return articles
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
