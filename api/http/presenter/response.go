package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error envelope for every non-2xx response. The field
// is named "detail" to stay wire-compatible with existing API clients.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, detail string) error {
	return JSON(c, status, ErrorResponse{Detail: detail})
}
