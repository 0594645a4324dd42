package api

import (
	"github.com/care4u/care4u/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDoctors(c *fiber.Ctx) error {
	doctors, err := handler.doctorService.ListAvailable(c.Query("specialization"), c.Query("search"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load doctors")
	}

	views := make([]fiber.Map, 0, len(doctors))
	for index := range doctors {
		views = append(views, doctorView(&doctors[index]))
	}
	return c.JSON(fiber.Map{"doctors": views})
}

func (handler *Handler) GetDoctor(c *fiber.Ctx) error {
	doctorID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid doctor id")
	}
	doctor, err := handler.doctorService.FindByID(doctorID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "doctor not found")
	}
	return c.JSON(doctorView(&doctor))
}

func (handler *Handler) GetSpecializations(c *fiber.Ctx) error {
	specializations, err := handler.doctorService.ListSpecializations()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load specializations")
	}
	return c.JSON(fiber.Map{"specializations": specializations})
}

func doctorView(doctor *models.Doctor) fiber.Map {
	return fiber.Map{
		"id":               doctor.ID,
		"name":             doctor.Name,
		"specialization":   doctor.Specialization,
		"qualifications":   doctor.Qualifications,
		"experience":       doctor.Experience,
		"consultation_fee": doctor.ConsultationFee,
		"available_days":   doctor.AvailableDays,
		"available_time":   doctor.AvailableTime,
		"is_available":     doctor.IsAvailable,
	}
}
