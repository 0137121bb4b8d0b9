package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// overrideField is the form field carrying the intended HTTP verb, matching
// the common method-override convention for HTML forms.
const overrideField = "_method"

// MethodOverride rewrites a POST into the verb named by the _method form
// field. HTML forms can only submit GET and POST; edit and delete forms
// tunnel PATCH/DELETE through this middleware.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			switch strings.ToUpper(c.FormValue(overrideField)) {
			case fiber.MethodPatch:
				c.Method(fiber.MethodPatch)
			case fiber.MethodDelete:
				c.Method(fiber.MethodDelete)
			case fiber.MethodPut:
				c.Method(fiber.MethodPut)
			}
		}
		return c.Next()
	}
}
