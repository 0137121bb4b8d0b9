// Package service contains the application's business logic.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/blob"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/models"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/observability"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/store"
)

// DefaultUploadTimeout bounds the blob backend call when no timeout is configured.
const DefaultUploadTimeout = 10 * time.Second

// UploadFile is the in-memory form of an uploaded image.
type UploadFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CreateReviewInput holds the submission form fields plus the optional file.
type CreateReviewInput struct {
	Username string
	ItemName string
	Content  string
	Rating   int
	File     *UploadFile
}

// UpdateReviewInput holds the edit form fields.
type UpdateReviewInput struct {
	ID       string
	ItemName string
	Content  string
	Rating   int
}

// ReviewService coordinates the store and the blob backend.
type ReviewService struct {
	store         store.PostStore
	blobs         blob.Backend
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// NewReviewService creates a review service. A zero uploadTimeout falls back
// to DefaultUploadTimeout.
func NewReviewService(st store.PostStore, backend blob.Backend, uploadTimeout time.Duration, logger *slog.Logger) *ReviewService {
	if uploadTimeout <= 0 {
		uploadTimeout = DefaultUploadTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		store:         st,
		blobs:         backend,
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

// Create records a new review. When a file is attached it is handed to the
// blob backend first; upload failure is logged and the review is recorded
// without an image. A broken storage backend must never prevent reviews from
// being recorded.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) models.Post {
	image := ""
	if in.File != nil && len(in.File.Content) > 0 {
		image = s.uploadBestEffort(ctx, in.File)
	}

	post := s.store.Create(store.CreatePostParams{
		Username: in.Username,
		ItemName: in.ItemName,
		Content:  in.Content,
		Image:    image,
		Rating:   in.Rating,
	})

	observability.ReviewsCreated.WithLabelValues(boolLabel(image != "")).Inc()
	s.logger.InfoContext(ctx, "review created",
		slog.String("post_id", post.ID),
		slog.Int("rating", post.Rating),
		slog.Bool("has_image", image != ""),
	)
	return post
}

// Update edits an existing review. Unknown ids are a silent no-op.
func (s *ReviewService) Update(ctx context.Context, in UpdateReviewInput) {
	touched := s.store.Update(in.ID, store.UpdatePostParams{
		ItemName: in.ItemName,
		Content:  in.Content,
		Rating:   in.Rating,
	})
	if touched {
		observability.ReviewsUpdated.Inc()
		s.logger.InfoContext(ctx, "review updated", slog.String("post_id", in.ID))
	}
}

// Delete removes a review. The stored blob, if any, is left behind; the
// backend interface has no delete operation.
func (s *ReviewService) Delete(ctx context.Context, id string) {
	if s.store.Delete(id) {
		observability.ReviewsDeleted.Inc()
		s.logger.InfoContext(ctx, "review deleted", slog.String("post_id", id))
	}
}

// uploadBestEffort stores the file under a fresh unique name and returns the
// backend's reference, or "" on any failure. The name is a freshly generated
// uuid joined with the original filename; a collision is possible in theory
// and accepted.
func (s *ReviewService) uploadBestEffort(ctx context.Context, file *UploadFile) string {
	name := uuid.NewString() + "-" + file.Filename

	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	ref, err := s.blobs.Store(ctx, name, file.Content, file.ContentType)
	if err != nil {
		observability.UploadFailures.WithLabelValues(s.blobs.Name()).Inc()
		uploadErr := models.NewUploadError(s.blobs.Name(), err)
		s.logger.WarnContext(ctx, "blob upload failed, recording review without image",
			slog.String("name", name),
			slog.String("error", uploadErr.Error()),
		)
		return ""
	}
	return ref
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
