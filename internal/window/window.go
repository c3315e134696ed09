package window

import (
	"time"

	"NewsSentiment/internal/domain"
)

// Filter retains articles published within a trailing calendar window.
// The cutoff is fixed at construction; build a fresh Filter per run.
type Filter struct {
	cutoff time.Time
}

// New computes the cutoff as monthsBack calendar months before now in UTC.
// Subtraction is calendar-aware: the day of month is kept, clamped to the
// last valid day of the target month (March 31 minus one month lands on
// the last day of February). monthsBack must be positive; callers validate
// it at configuration time.
func New(now time.Time, monthsBack int) Filter {
	return Filter{cutoff: monthsBefore(now.UTC(), monthsBack)}
}

// Cutoff exposes the computed lower bound of the window.
func (f Filter) Cutoff() time.Time {
	return f.cutoff
}

// IsRecent reports whether the article was published at or after the cutoff.
func (f Filter) IsRecent(article domain.Article) bool {
	return !article.PublishedAt.Before(f.cutoff)
}

// FilterRecent returns the articles inside the window, preserving order.
func (f Filter) FilterRecent(articles []domain.Article) []domain.Article {
	recent := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if f.IsRecent(article) {
			recent = append(recent, article)
		}
	}
	return recent
}

// monthsBefore subtracts whole calendar months without the day-overflow
// normalization time.AddDate performs.
func monthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 - months
	targetYear := year + total/12
	targetMonth := total % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}

	m := time.Month(targetMonth + 1)
	if last := daysIn(targetYear, m); day > last {
		day = last
	}

	return time.Date(targetYear, m, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func daysIn(year int, month time.Month) int {
	// day zero of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
