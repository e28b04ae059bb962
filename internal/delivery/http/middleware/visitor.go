package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"

	// VisitorKey is the locals key carrying the visitor id for handlers.
	VisitorKey = "visitor"
)

// Visitor assigns every client a stable anonymous id via cookie. Per-visitor
// state (favorites, language) is keyed by it.
func Visitor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(visitorCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(VisitorKey, id)
		return c.Next()
	}
}

// VisitorID reads the visitor id installed by the Visitor middleware.
func VisitorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(VisitorKey).(string); ok {
		return id
	}
	return ""
}
