package handler

import (
	"errors"

	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// identity pulls the verified caller out of the request context (set by the
// auth middleware; JSON numbers arrive as float64).
func identity(c *fiber.Ctx) usecase.Identity {
	id, _ := c.Locals("user_id").(float64)
	role, _ := c.Locals("role").(string)
	return usecase.Identity{ID: uint(id), Role: role}
}

// fail maps an error kind to its HTTP status. Known kinds travel to the
// client verbatim so the UI can show the actual reason; anything else is a
// storage/internal failure that gets logged and masked.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrLeaveNotFound), errors.Is(err, usecase.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case usecase.IsForbidden(err):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case usecase.IsBadRequest(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
