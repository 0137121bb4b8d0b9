package service

import (
	"math"
	"time"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/models"
)

// RatingBucket is one histogram bar of the daily summary.
type RatingBucket struct {
	Rating int
	Count  int
}

// BestItem is the all-time leaderboard winner.
type BestItem struct {
	Name    string
	Average float64
	Count   int
}

// Summary is the view model of the analytics page. The daily scope and the
// all-time best-item scope intentionally do not share a filter: "how did
// today go" and a standing leaderboard are different questions.
type Summary struct {
	TodaysPosts   []models.Post
	Histogram     []RatingBucket
	AverageRating float64
	BestItem      BestItem
}

// AnalyticsService derives statistics from a snapshot of the review store.
// It holds no state beyond the injected clock.
type AnalyticsService struct {
	now func() time.Time
}

// NewAnalyticsService creates an aggregator using the given clock;
// nil means the system clock.
func NewAnalyticsService(now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{now: now}
}

// Summarize computes the daily histogram and average plus the all-time best
// item over the given snapshot. It is pure: the snapshot is not mutated.
func (s *AnalyticsService) Summarize(posts []models.Post) Summary {
	today := truncateToDay(s.now())

	var todays []models.Post
	for _, p := range posts {
		if truncateToDay(p.CreatedAt).Equal(today) {
			todays = append(todays, p)
		}
	}

	counts := map[int]int{}
	sum, qualifying := 0, 0
	for _, p := range todays {
		if p.Rating < 1 || p.Rating > 5 {
			continue
		}
		counts[p.Rating]++
		sum += p.Rating
		qualifying++
	}

	histogram := make([]RatingBucket, 0, 5)
	for r := 1; r <= 5; r++ {
		histogram = append(histogram, RatingBucket{Rating: r, Count: counts[r]})
	}

	average := 0.0
	if qualifying > 0 {
		average = round2(float64(sum) / float64(qualifying))
	}

	return Summary{
		TodaysPosts:   todays,
		Histogram:     histogram,
		AverageRating: average,
		BestItem:      bestItem(posts),
	}
}

// bestItem groups all posts by item name and picks the item with the strictly
// highest mean rating. Ties keep the first-encountered item in insertion
// order; items with no qualifying rating cannot win.
func bestItem(posts []models.Post) BestItem {
	type agg struct {
		sum   int
		count int
	}

	var order []string
	byName := map[string]*agg{}
	for _, p := range posts {
		name := p.DisplayItemName()
		a, ok := byName[name]
		if !ok {
			a = &agg{}
			byName[name] = a
			order = append(order, name)
		}
		if p.Rating >= 1 && p.Rating <= 5 {
			a.sum += p.Rating
			a.count++
		}
	}

	best := BestItem{Name: "N/A"}
	for _, name := range order {
		a := byName[name]
		if a.count == 0 {
			continue
		}
		// Strict > keeps the first-encountered item on a tie. Any
		// qualifying item beats the zero-valued sentinel.
		avg := round2(float64(a.sum) / float64(a.count))
		if avg > best.Average {
			best = BestItem{Name: name, Average: avg, Count: a.count}
		}
	}
	return best
}

// truncateToDay truncates t to midnight in its location. Calendar-day
// equality, not a 24-hour rolling window.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
