package response

import (
	"rolehub/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response body every endpoint returns,
// success and failure alike.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
}

// Success sends a 200 success envelope
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  domain.CategorySuccess,
		Message: message,
		Code:    fiber.StatusOK,
		Data:    data,
	})
}

// Created sends a 201 success envelope
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Status:  domain.CategorySuccess,
		Message: message,
		Code:    fiber.StatusCreated,
		Data:    data,
	})
}
