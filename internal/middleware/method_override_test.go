package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideApp() *fiber.App {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Post("/posts/:id", func(c *fiber.Ctx) error { return c.SendString("post") })
	app.Patch("/posts/:id", func(c *fiber.Ctx) error { return c.SendString("patch") })
	app.Delete("/posts/:id", func(c *fiber.Ctx) error { return c.SendString("delete") })
	return app
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name     string
		override string
		wantBody string
	}{
		{"delete override", "DELETE", "delete"},
		{"patch override", "PATCH", "patch"},
		{"lowercase override", "delete", "delete"},
		{"no override stays post", "", "post"},
		{"unknown verb stays post", "TEAPOT", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := overrideApp()
			form := url.Values{}
			if tt.override != "" {
				form.Set("_method", tt.override)
			}

			resp, err := app.Test(formRequest("/posts/1", form))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body := make([]byte, 16)
			n, _ := resp.Body.Read(body)
			assert.Equal(t, tt.wantBody, string(body[:n]))
		})
	}
}
