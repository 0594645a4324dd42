package api

import (
	"errors"
	"time"

	"github.com/care4u/care4u/internal/models"
	"github.com/care4u/care4u/internal/services"
	"github.com/gofiber/fiber/v2"
)

type bookAppointmentInput struct {
	DoctorID uint   `json:"doctor_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Symptoms string `json:"symptoms"`
}

type updateStatusInput struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (handler *Handler) BookAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := bookAppointmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	doctor, err := handler.doctorService.FindByID(input.DoctorID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "doctor not found")
	}

	date, err := handler.appointmentService.ParseDate(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	appointment, err := handler.appointmentService.Book(user.ID, doctor.ID, date, input.TimeSlot, input.Symptoms)
	switch {
	case errors.Is(err, services.ErrInvalidTimeSlot):
		return apiError(c, fiber.StatusBadRequest, "invalid time slot")
	case errors.Is(err, services.ErrSlotAlreadyBooked):
		return apiError(c, fiber.StatusConflict, "time slot already booked")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to book appointment")
	}

	triageResult := handler.triageEngine.Analyze(appointment.Symptoms)
	handler.notifications.NotifyBooking(c.Context(), *user, doctor, appointment, triageResult.Emergency)
	handler.audit.Record(user.Username, "appointment.book", appointmentResource(appointment.ID), "doctor "+doctor.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment":  appointmentView(&appointment),
		"is_emergency": triageResult.Emergency,
	})
}

func (handler *Handler) GetMyAppointments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	appointments, err := handler.appointmentService.ListForPatient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load appointments")
	}
	return c.JSON(fiber.Map{"appointments": appointmentViews(appointments)})
}

func (handler *Handler) GetAvailableSlots(c *fiber.Ctx) error {
	doctorID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid doctor id")
	}
	date, err := handler.appointmentService.ParseDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := handler.appointmentService.AvailableSlots(doctorID, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load slots")
	}
	return c.JSON(fiber.Map{"available_slots": slots})
}

func (handler *Handler) CancelAppointment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	err = handler.appointmentService.Cancel(appointmentID, user.ID, user.IsAdmin())
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		return apiError(c, fiber.StatusNotFound, "appointment not found")
	case errors.Is(err, services.ErrNotAppointmentOwner):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to cancel appointment")
	}

	handler.audit.Record(user.Username, "appointment.cancel", appointmentResource(appointmentID), "")
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DoctorDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.DoctorID == nil {
		return apiError(c, fiber.StatusForbidden, "no doctor profile linked")
	}

	dashboard, err := handler.appointmentService.DashboardForDoctor(*user.DoctorID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}
	return c.JSON(fiber.Map{
		"today":     appointmentViews(dashboard.Today),
		"upcoming":  appointmentViews(dashboard.Upcoming),
		"total":     dashboard.Total,
		"pending":   dashboard.Pending,
		"confirmed": dashboard.Confirmed,
		"completed": dashboard.Completed,
	})
}

func (handler *Handler) GetDoctorAppointments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.DoctorID == nil {
		return apiError(c, fiber.StatusForbidden, "no doctor profile linked")
	}
	appointments, err := handler.appointmentService.ListForDoctor(*user.DoctorID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load appointments")
	}
	return c.JSON(fiber.Map{"appointments": appointmentViews(appointments)})
}

func (handler *Handler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.DoctorID == nil {
		return apiError(c, fiber.StatusForbidden, "no doctor profile linked")
	}
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	input := updateStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err = handler.appointmentService.UpdateStatusForDoctor(appointmentID, *user.DoctorID, input.Status, input.Notes)
	switch {
	case errors.Is(err, services.ErrInvalidAppointmentStatus):
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	case errors.Is(err, services.ErrAppointmentNotFound):
		return apiError(c, fiber.StatusNotFound, "appointment not found")
	case errors.Is(err, services.ErrNotAppointmentOwner):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update appointment")
	}

	if appointment, findErr := handler.appointmentService.Find(appointmentID); findErr == nil {
		handler.notifications.NotifyStatusChange(c.Context(), appointment, input.Status)
	}
	handler.audit.Record(user.Username, "appointment.status", appointmentResource(appointmentID), input.Status)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func appointmentView(appointment *models.Appointment) fiber.Map {
	return fiber.Map{
		"id":         appointment.ID,
		"patient_id": appointment.PatientID,
		"doctor_id":  appointment.DoctorID,
		"date":       appointment.Date.Format("2006-01-02"),
		"time_slot":  appointment.TimeSlot,
		"symptoms":   appointment.Symptoms,
		"status":     appointment.Status,
		"notes":      appointment.Notes,
	}
}

func appointmentViews(appointments []models.Appointment) []fiber.Map {
	views := make([]fiber.Map, 0, len(appointments))
	for index := range appointments {
		views = append(views, appointmentView(&appointments[index]))
	}
	return views
}
