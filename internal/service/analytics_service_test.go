package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/models"
)

var analyticsNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return analyticsNow }
}

// reviewAt builds a post created at the given time.
func reviewAt(t time.Time, item string, rating int) models.Post {
	return models.Post{
		ID:        "id-" + item,
		Username:  "u",
		ItemName:  item,
		Content:   "c",
		Rating:    rating,
		CreatedAt: t,
		UpdatedAt: t,
	}
}

func TestAnalytics_HistogramCountsTodaysPosts(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())
	earlyToday := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	yesterday := analyticsNow.Add(-24 * time.Hour)

	posts := []models.Post{
		reviewAt(analyticsNow, "Poha", 4),
		reviewAt(earlyToday, "Poha", 4),
		reviewAt(analyticsNow, "Upma", 2),
		reviewAt(yesterday, "Poha", 5), // other day, must not contribute
	}

	sum := svc.Summarize(posts)

	require.Len(t, sum.Histogram, 5)
	assert.Equal(t, 2, sum.Histogram[3].Count, "two 4-star reviews today")
	assert.Equal(t, 1, sum.Histogram[1].Count, "one 2-star review today")
	assert.Equal(t, 0, sum.Histogram[4].Count, "yesterday's 5-star excluded")

	total := 0
	for _, b := range sum.Histogram {
		total += b.Count
	}
	assert.Equal(t, 3, total)
	assert.Len(t, sum.TodaysPosts, 3)
}

func TestAnalytics_DayBoundaryIsCalendarEquality(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	// 20 hours ago is still within the last 24 hours but on a different
	// calendar day; it must be excluded.
	posts := []models.Post{reviewAt(analyticsNow.Add(-20*time.Hour), "Poha", 5)}

	sum := svc.Summarize(posts)
	assert.Empty(t, sum.TodaysPosts)
	assert.Equal(t, 0.0, sum.AverageRating)
}

func TestAnalytics_AverageRounding(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	posts := []models.Post{
		reviewAt(analyticsNow, "a", 4),
		reviewAt(analyticsNow, "b", 1),
		reviewAt(analyticsNow, "c", 3),
	}

	sum := svc.Summarize(posts)
	assert.Equal(t, 2.67, sum.AverageRating)
}

func TestAnalytics_AverageZeroWithoutQualifyingPosts(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	tests := []struct {
		name  string
		posts []models.Post
	}{
		{"no posts", nil},
		{"only zero ratings", []models.Post{reviewAt(analyticsNow, "a", 0)}},
		{"only out-of-range ratings", []models.Post{reviewAt(analyticsNow, "a", 7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := svc.Summarize(tt.posts)
			assert.Equal(t, 0.0, sum.AverageRating)
		})
	}
}

func TestAnalytics_OutOfRangeRatingsExcludedFromHistogramAndAverage(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	posts := []models.Post{
		reviewAt(analyticsNow, "a", 5),
		reviewAt(analyticsNow, "b", 0),
		reviewAt(analyticsNow, "c", 9),
	}

	sum := svc.Summarize(posts)

	total := 0
	for _, b := range sum.Histogram {
		total += b.Count
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 5.0, sum.AverageRating)
	// The unqualified posts still count as today's posts for display.
	assert.Len(t, sum.TodaysPosts, 3)
}

func TestAnalytics_BestItemStrictGreaterTieBreak(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	// Coffee mean 4.0 over [5,3]; Upma mean 4.0 over [4]. First-encountered
	// item wins under strict-greater comparison.
	posts := []models.Post{
		reviewAt(analyticsNow, "Coffee", 5),
		reviewAt(analyticsNow, "Upma", 4),
		reviewAt(analyticsNow, "Coffee", 3),
	}

	sum := svc.Summarize(posts)
	assert.Equal(t, "Coffee", sum.BestItem.Name)
	assert.Equal(t, 4.0, sum.BestItem.Average)
	assert.Equal(t, 2, sum.BestItem.Count)
}

func TestAnalytics_BestItemSpansAllDays(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())
	lastWeek := analyticsNow.Add(-7 * 24 * time.Hour)

	posts := []models.Post{
		reviewAt(analyticsNow, "Poha", 2),
		reviewAt(lastWeek, "Dosa", 5),
	}

	sum := svc.Summarize(posts)
	assert.Equal(t, "Dosa", sum.BestItem.Name, "leaderboard is all-time, not daily")
}

func TestAnalytics_BestItemUnknownItemFallback(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	posts := []models.Post{
		reviewAt(analyticsNow, "", 4),
	}

	sum := svc.Summarize(posts)
	assert.Equal(t, models.DefaultItemName, sum.BestItem.Name)
}

func TestAnalytics_BestItemSentinelWhenEmpty(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	sum := svc.Summarize(nil)
	assert.Equal(t, BestItem{Name: "N/A", Average: 0, Count: 0}, sum.BestItem)
}

func TestAnalytics_ItemWithoutQualifyingPostsCannotWin(t *testing.T) {
	svc := NewAnalyticsService(fixedClock())

	posts := []models.Post{
		reviewAt(analyticsNow, "Broken", 0),
		reviewAt(analyticsNow, "Poha", 1),
	}

	sum := svc.Summarize(posts)
	assert.Equal(t, "Poha", sum.BestItem.Name)
}
