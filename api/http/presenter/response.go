package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	// Errors lists per-field validation failures.
	Errors any `json:"errors,omitempty"`
}

// MessageResponse is the body of operations that return only a message.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// JSON writes body with "success": true merged in.
func JSON(c *fiber.Ctx, status int, body fiber.Map) error {
	if body == nil {
		body = fiber.Map{}
	}
	body["success"] = true
	return c.Status(status).JSON(body)
}

func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message, Success: true})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Message: message})
}

func ValidationError(c *fiber.Ctx, message string, fields any) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: message, Errors: fields})
}
