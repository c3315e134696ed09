package relevance

import (
	"fmt"
	"log/slog"
	"strings"

	"NewsSentiment/internal/domain"
)

// Policy decides whether a piece of article text counts as on-topic.
// Matching is case-insensitive raw substring containment, so a term may
// match inside a larger word.
type Policy interface {
	Name() string
	ContainsReference(text string) bool
}

// Policy names accepted by ForConfig.
const (
	PolicyKeywords = "keywords"
	PolicyChinaXi  = "china-xi"
)

// ForConfig resolves the configured policy by name. An unknown name is a
// configuration error.
func ForConfig(name string, keywords []string) (Policy, error) {
	switch name {
	case "", PolicyKeywords:
		return NewKeywordPolicy(keywords), nil
	case PolicyChinaXi:
		return DualTermPolicy{}, nil
	default:
		return nil, fmt.Errorf("relevance policy %s is not registered", name)
	}
}

// KeywordPolicy matches when the text contains any configured term.
type KeywordPolicy struct {
	terms []string
}

// NewKeywordPolicy lower-cases the terms once; empty terms are dropped.
func NewKeywordPolicy(terms []string) *KeywordPolicy {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			cleaned = append(cleaned, term)
		}
	}
	return &KeywordPolicy{terms: cleaned}
}

// Name identifies the policy in configuration and diagnostics.
func (p *KeywordPolicy) Name() string {
	return PolicyKeywords
}

// ContainsReference reports whether any term occurs in the text.
func (p *KeywordPolicy) ContainsReference(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range p.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// DualTermPolicy matches only the literal substrings "china" or "xi".
// It is strictly narrower than the keyword policy: related terms such as
// "taiwan" or "beijing" do not match on their own.
type DualTermPolicy struct{}

// Name identifies the policy in configuration and diagnostics.
func (DualTermPolicy) Name() string {
	return PolicyChinaXi
}

// ContainsReference reports whether "china" or "xi" occurs in the text.
func (DualTermPolicy) ContainsReference(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "china") || strings.Contains(lower, "xi")
}

// Filter applies a Policy to article collections.
type Filter struct {
	policy Policy
	logger *slog.Logger
}

// NewFilter wires the active policy with an optional diagnostics logger.
func NewFilter(policy Policy, log *slog.Logger) *Filter {
	return &Filter{policy: policy, logger: log}
}

// Policy exposes the active policy.
func (f *Filter) Policy() Policy {
	return f.policy
}

// FilterRelevant returns the subsequence of articles whose combined title
// and description match the policy, preserving relative order. Filtering
// an already-filtered collection returns it unchanged.
func (f *Filter) FilterRelevant(articles []domain.Article) []domain.Article {
	relevant := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if f.policy.ContainsReference(article.FullText()) {
			relevant = append(relevant, article)
		}
	}

	f.debug("filtered relevant articles",
		"policy", f.policy.Name(),
		"kept", len(relevant),
		"total", len(articles))
	return relevant
}

func (f *Filter) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
