package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"NewsSentiment/internal/domain"
)

func TestCutoffSubtractsCalendarMonths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		now    time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain month step",
			now:    time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, time.May, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:   "march 31 clamps to february 28",
			now:    time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "leap year keeps february 29",
			now:    time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "crosses year boundary",
			now:    time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			months: 13,
			want:   time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "twelve months back",
			now:    time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "may 31 clamps to april 30",
			now:    time.Date(2025, time.May, 31, 23, 59, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, time.April, 30, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := New(tc.now, tc.months).Cutoff()
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestCutoffConvertsNowToUTC(t *testing.T) {
	t.Parallel()

	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	local := time.Date(2025, time.June, 1, 6, 0, 0, 0, shanghai)
	got := New(local, 1).Cutoff()

	// 06:00+08:00 is the previous day 22:00 UTC
	want := time.Date(2025, time.April, 30, 22, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestIsRecentBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	filter := New(now, 3)

	onCutoff := domain.NewArticle("t", "l", filter.Cutoff(), "d", "src")
	assert.True(t, filter.IsRecent(onCutoff), "article published exactly at the cutoff is recent")

	justBefore := domain.NewArticle("t", "l", filter.Cutoff().Add(-time.Second), "d", "src")
	assert.False(t, filter.IsRecent(justBefore))

	fresh := domain.NewArticle("t", "l", now, "d", "src")
	assert.True(t, filter.IsRecent(fresh))
}

func TestFilterRecentPreservesOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	filter := New(now, 1)

	articles := []domain.Article{
		domain.NewArticle("a", "l", now.AddDate(0, 0, -1), "d", "src"),
		domain.NewArticle("old", "l", now.AddDate(0, -3, 0), "d", "src"),
		domain.NewArticle("b", "l", now.AddDate(0, 0, -10), "d", "src"),
	}

	recent := filter.FilterRecent(articles)
	if assert.Len(t, recent, 2) {
		assert.Equal(t, "a", recent[0].Title)
		assert.Equal(t, "b", recent[1].Title)
	}
}
