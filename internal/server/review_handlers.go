package server

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/middleware"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/models"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/service"
)

// ListReviews renders every review, oldest first.
func (s *Server) ListReviews(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Reviews",
		"Posts": s.store.List(),
	})
}

// NewReviewForm renders the submission form.
func (s *Server) NewReviewForm(c *fiber.Ctx) error {
	return c.Render("new", fiber.Map{
		"Title": "New Review",
	})
}

// CreateReview records a submitted review and redirects to the list. The
// image is optional; form fields are accepted as-is, and a rating that does
// not parse is stored as 0.
func (s *Server) CreateReview(c *fiber.Ctx) error {
	in := service.CreateReviewInput{
		Username: c.FormValue("username"),
		ItemName: c.FormValue("itemname"),
		Content:  c.FormValue("content"),
		Rating:   parseRating(c.FormValue("rating")),
	}

	if file, err := readUpload(c, "image"); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "reading upload failed", "error", err)
	} else {
		in.File = file
	}

	s.reviews.Create(c.UserContext(), in)

	return c.Redirect("/posts", fiber.StatusFound)
}

// ShowReview renders a single review. An unknown id renders the page without
// a post rather than failing.
func (s *Server) ShowReview(c *fiber.Ctx) error {
	return c.Render("singlepost", fiber.Map{
		"Title": "Review",
		"Post":  s.findPost(c.Params("id")),
	})
}

// EditReviewForm renders the edit form pre-filled with the review.
func (s *Server) EditReviewForm(c *fiber.Ctx) error {
	return c.Render("edit", fiber.Map{
		"Title": "Edit Review",
		"Post":  s.findPost(c.Params("id")),
	})
}

// UpdateReview applies the edit form and redirects to the list. Unknown ids
// are a silent no-op.
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	s.reviews.Update(c.UserContext(), service.UpdateReviewInput{
		ID:       c.Params("id"),
		ItemName: c.FormValue("itemname"),
		Content:  c.FormValue("content"),
		Rating:   parseRating(c.FormValue("rating")),
	})

	return c.Redirect("/posts", fiber.StatusFound)
}

// DeleteReview removes a review and redirects to the list. Unknown ids are a
// silent no-op.
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	s.reviews.Delete(c.UserContext(), c.Params("id"))

	return c.Redirect("/posts", fiber.StatusFound)
}

// findPost returns the review as a pointer so templates can test for absence.
func (s *Server) findPost(id string) *models.Post {
	post, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &post
}

// parseRating maps a malformed or missing rating to 0. Analytics excludes
// out-of-range ratings, so a 0 never skews the numbers.
func parseRating(v string) int {
	rating, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return rating
}

// readUpload pulls the named multipart file into memory. A request without
// the field returns nil with no error.
func readUpload(c *fiber.Ctx, field string) (*service.UploadFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		// Plain form posts carry no file part at all.
		return nil, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
