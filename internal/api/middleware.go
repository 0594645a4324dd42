package api

import (
	"github.com/care4u/care4u/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName = "care4u_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	return requireRole(c, models.RoleAdmin)
}

func (handler *Handler) DoctorOnly(c *fiber.Ctx) error {
	return requireRole(c, models.RoleDoctor)
}

func (handler *Handler) PatientOnly(c *fiber.Ctx) error {
	return requireRole(c, models.RolePatient)
}

func requireRole(c *fiber.Ctx, role string) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != role {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
	return c.Next()
}
