package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/middleware"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/observability"
)

// ShowLogin renders the login form.
func (s *Server) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Login",
	})
}

// Login checks the submitted credentials and redirects to the review list on
// success. There is no session; the check gates navigation only.
func (s *Server) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !s.verifier.Verify(username, password) {
		observability.LoginFailures.Inc()
		middleware.Logger.WarnContext(c.UserContext(), "login failed", "username", username)

		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title": "Login",
			"Error": "Invalid username or password",
		})
	}

	return c.Redirect("/posts", fiber.StatusFound)
}
