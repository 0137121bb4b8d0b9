// Package observability provides application metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReviewsCreated counts created reviews, partitioned by whether an
	// image made it to the blob backend.
	ReviewsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviewboard_reviews_created_total",
		Help: "Total number of reviews created",
	}, []string{"with_image"})

	// ReviewsUpdated counts review edits.
	ReviewsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviewboard_reviews_updated_total",
		Help: "Total number of review edits",
	})

	// ReviewsDeleted counts review deletions.
	ReviewsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviewboard_reviews_deleted_total",
		Help: "Total number of review deletions",
	})

	// UploadFailures counts best-effort upload failures by backend.
	UploadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviewboard_upload_failures_total",
		Help: "Total number of failed blob uploads",
	}, []string{"backend"})

	// LoginFailures counts rejected login attempts.
	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviewboard_login_failures_total",
		Help: "Total number of rejected login attempts",
	})
)
