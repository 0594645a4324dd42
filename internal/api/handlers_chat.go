package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type chatAssistantInput struct {
	Symptoms string `json:"symptoms"`
	// Message is the legacy field name still sent by older clients.
	Message string `json:"message"`
}

func (handler *Handler) ChatAssistant(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := chatAssistantInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Please describe your symptoms.",
		})
	}

	symptomsText := strings.TrimSpace(input.Symptoms)
	if symptomsText == "" {
		symptomsText = strings.TrimSpace(input.Message)
	}
	if symptomsText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Please describe your symptoms.",
		})
	}

	result := handler.triageEngine.Analyze(symptomsText)
	handler.audit.Record(user.Username, "triage.analyze", userResource(user.ID), "")

	return c.JSON(fiber.Map{
		"success":         true,
		"response":        result.ResponseText,
		"is_emergency":    result.Emergency,
		"specializations": result.Specializations,
		"severity_score":  result.SeverityScore,
		"health_tips":     result.HealthTips,
	})
}
