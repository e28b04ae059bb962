package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/listing-microservice/internal/delivery/http/middleware"
)

func visitorFrom(c *fiber.Ctx) string {
	return middleware.VisitorID(c)
}
