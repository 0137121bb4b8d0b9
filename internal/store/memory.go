// Package store provides the review storage layer.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/models"
)

// CreatePostParams holds the caller-supplied fields for a new review.
type CreatePostParams struct {
	Username string
	ItemName string
	Content  string
	Image    string
	Rating   int
}

// UpdatePostParams holds the mutable fields of a review. Username, image and
// creation time are never touched by an update.
type UpdatePostParams struct {
	ItemName string
	Content  string
	Rating   int
}

// PostStore defines the interface for review storage. The in-memory variant is
// the only implementation today; the interface exists so a persistent backend
// can be substituted without touching route logic.
type PostStore interface {
	List() []models.Post
	Find(id string) (models.Post, bool)
	Create(p CreatePostParams) models.Post
	Update(id string, p UpdatePostParams) bool
	Delete(id string) bool
	Len() int
}

// MemoryStore is an insertion-ordered, mutex-guarded review store. All state
// is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []models.Post
	now   func() time.Time
	newID func() string
}

// NewMemoryStore creates an empty store using the system clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock creates a store with an injected clock.
// Use this in tests that need deterministic timestamps.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		now:   now,
		newID: uuid.NewString,
	}
}

// List returns a snapshot copy of all reviews in insertion order. Callers may
// mutate the returned slice freely.
func (s *MemoryStore) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Find returns the review with the given id. The second return value reports
// whether it exists; absence is a valid, non-fatal outcome.
func (s *MemoryStore) Find(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Create assigns a fresh id, stamps both timestamps and appends the review to
// the end of the sequence.
func (s *MemoryStore) Create(p CreatePostParams) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	post := models.Post{
		ID:        s.newID(),
		Username:  p.Username,
		ItemName:  p.ItemName,
		Content:   p.Content,
		Image:     p.Image,
		Rating:    p.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts = append(s.posts, post)
	return post
}

// Update overwrites the mutable fields of the matching review and refreshes
// UpdatedAt. Updating an unknown id is a silent no-op; the return value
// reports whether a review was touched.
func (s *MemoryStore) Update(id string, p UpdatePostParams) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ItemName = p.ItemName
			s.posts[i].Content = p.Content
			s.posts[i].Rating = p.Rating
			s.posts[i].UpdatedAt = s.now()
			return true
		}
	}
	return false
}

// Delete removes the matching review. Deleting an unknown id is a no-op; the
// return value reports whether a review was removed.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored reviews.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
