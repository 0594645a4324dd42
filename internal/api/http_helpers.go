package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(value), nil
}

func userResource(id uint) string {
	return "user:" + strconv.FormatUint(uint64(id), 10)
}

func doctorResource(id uint) string {
	return "doctor:" + strconv.FormatUint(uint64(id), 10)
}

func appointmentResource(id uint) string {
	return "appointment:" + strconv.FormatUint(uint64(id), 10)
}

func recordResource(id uint) string {
	return "record:" + strconv.FormatUint(uint64(id), 10)
}
