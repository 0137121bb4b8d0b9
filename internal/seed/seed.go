// Package seed populates the store with demo reviews for development.
package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/store"
)

// menu is the pool of item names demo reviews are spread across so the
// analytics leaderboard has something to rank.
var menu = []string{"Poha", "Upma", "Dosa", "Idli", "Coffee", "Chai"}

// DemoReviews generates n review submissions with ratings in 1..5.
func DemoReviews(n int) []store.CreatePostParams {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())

	out := make([]store.CreatePostParams, 0, n)
	for i := 0; i < n; i++ {
		item := menu[gofakeit.Number(0, len(menu)-1)]
		content := gofakeit.Sentence(8)
		if gofakeit.Bool() {
			content = gofakeit.SentenceSimple()
		}
		out = append(out, store.CreatePostParams{
			Username: gofakeit.Username(),
			ItemName: item,
			Content:  content,
			Rating:   gofakeit.Number(1, 5),
		})
	}
	return out
}

// Apply creates n demo reviews in the store and returns how many were added.
func Apply(st store.PostStore, n int) int {
	for _, p := range DemoReviews(n) {
		st.Create(p)
	}
	return n
}
