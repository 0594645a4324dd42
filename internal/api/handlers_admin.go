package api

import (
	"errors"
	"strconv"

	"github.com/care4u/care4u/internal/models"
	"github.com/care4u/care4u/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultAdminAppointmentLimit = 100
	defaultAuditTrailLimit       = 50
)

type addDoctorInput struct {
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Qualifications  string  `json:"qualifications"`
	Experience      int     `json:"experience"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	ConsultationFee float64 `json:"consultation_fee"`
	AvailableDays   string  `json:"available_days"`
	AvailableTime   string  `json:"available_time"`
}

func (handler *Handler) AdminStats(c *fiber.Ctx) error {
	patients, err := handler.repositories.Users.CountByRole(models.RolePatient)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	doctors, err := handler.repositories.Doctors.Count()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	appointments, err := handler.repositories.Appointments.Count()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	pending, err := handler.repositories.Appointments.CountByStatus(models.AppointmentPending)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}

	return c.JSON(fiber.Map{
		"total_patients":       patients,
		"total_doctors":        doctors,
		"total_appointments":   appointments,
		"pending_appointments": pending,
	})
}

func (handler *Handler) AdminAppointments(c *fiber.Ctx) error {
	limit := defaultAdminAppointmentLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	appointments, err := handler.appointmentService.ListAll(limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load appointments")
	}
	return c.JSON(fiber.Map{"appointments": appointmentViews(appointments)})
}

func (handler *Handler) AdminUpdateAppointmentStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	input := updateStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err = handler.appointmentService.UpdateStatusForAdmin(appointmentID, input.Status)
	switch {
	case errors.Is(err, services.ErrInvalidAppointmentStatus):
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	case errors.Is(err, services.ErrAppointmentNotFound):
		return apiError(c, fiber.StatusNotFound, "appointment not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update appointment")
	}

	if appointment, findErr := handler.appointmentService.Find(appointmentID); findErr == nil {
		handler.notifications.NotifyStatusChange(c.Context(), appointment, input.Status)
	}
	handler.audit.Record(user.Username, "appointment.status", appointmentResource(appointmentID), input.Status)
	return c.JSON(fiber.Map{"ok": true})
}

// AdminAddDoctor creates a doctor profile plus its login account, returning
// the generated temporary password exactly once.
func (handler *Handler) AdminAddDoctor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := addDoctorInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	doctor := models.Doctor{
		Name:            input.Name,
		Specialization:  input.Specialization,
		Qualifications:  input.Qualifications,
		Experience:      input.Experience,
		Phone:           input.Phone,
		Email:           input.Email,
		ConsultationFee: input.ConsultationFee,
		AvailableDays:   input.AvailableDays,
		AvailableTime:   input.AvailableTime,
	}
	temporaryPassword, err := handler.doctorService.CreateWithLogin(&doctor)
	switch {
	case errors.Is(err, services.ErrInvalidDoctorName):
		return apiError(c, fiber.StatusBadRequest, "doctor name is required")
	case errors.Is(err, services.ErrInvalidDoctorSpecialization):
		return apiError(c, fiber.StatusBadRequest, "specialization is required")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to create doctor")
	}

	handler.audit.Record(user.Username, "doctor.create", doctorResource(doctor.ID), doctor.Name)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"doctor":             doctorView(&doctor),
		"temporary_password": temporaryPassword,
	})
}

func (handler *Handler) AdminInfrastructureHealth(c *fiber.Ctx) error {
	if handler.healthScanner == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "infrastructure monitoring is not configured")
	}

	instances, err := handler.healthScanner.RunningInstances(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to query instances")
	}
	return c.JSON(fiber.Map{"instances": instances})
}

func (handler *Handler) AdminAuditTrail(c *fiber.Ctx) error {
	limit := defaultAuditTrailLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := handler.audit.Recent(limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load audit trail")
	}

	views := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		views = append(views, fiber.Map{
			"id":         entry.ID,
			"actor":      entry.Actor,
			"action":     entry.Action,
			"resource":   entry.Resource,
			"details":    entry.Details,
			"created_at": entry.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(fiber.Map{"entries": views})
}
