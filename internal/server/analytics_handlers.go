package server

import (
	"github.com/gofiber/fiber/v2"
)

// Analytics renders the daily summary page: today's reviews, the 1-5 rating
// histogram, the day's average and the all-time best item.
func (s *Server) Analytics(c *fiber.Ctx) error {
	summary := s.analytics.Summarize(s.store.List())

	return c.Render("ana", fiber.Map{
		"Title":         "Analytics",
		"Posts":         summary.TodaysPosts,
		"Histogram":     summary.Histogram,
		"AverageRating": summary.AverageRating,
		"BestItem":      summary.BestItem,
	})
}
