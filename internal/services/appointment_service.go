package services

import (
	"errors"
	"strings"
	"time"

	"github.com/care4u/care4u/internal/models"
)

var (
	ErrInvalidAppointmentDate   = errors.New("invalid appointment date")
	ErrInvalidTimeSlot          = errors.New("invalid time slot")
	ErrSlotAlreadyBooked        = errors.New("time slot already booked")
	ErrInvalidAppointmentStatus = errors.New("invalid status")
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrNotAppointmentOwner      = errors.New("not the appointment owner")
)

const appointmentDateLayout = "2006-01-02"

// defaultTimeSlots is the fixed bookable grid for every doctor.
func defaultTimeSlots() []string {
	return []string{
		"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
		"11:00 AM", "11:30 AM", "2:00 PM", "2:30 PM",
		"3:00 PM", "3:30 PM", "4:00 PM",
	}
}

type AppointmentStore interface {
	FindByID(appointmentID uint) (models.Appointment, error)
	Create(appointment *models.Appointment) error
	ConfirmedSlotExists(doctorID uint, date time.Time, timeSlot string) (bool, error)
	ListConfirmedSlots(doctorID uint, date time.Time) ([]string, error)
	ListByPatient(patientID uint) ([]models.Appointment, error)
	ListByDoctor(doctorID uint) ([]models.Appointment, error)
	ListAll(limit int) ([]models.Appointment, error)
	UpdateStatus(appointmentID uint, status string, notes string) error
}

type AppointmentService struct {
	appointments AppointmentStore
	location     *time.Location
}

func NewAppointmentService(appointments AppointmentStore, location *time.Location) *AppointmentService {
	if location == nil {
		location = time.UTC
	}
	return &AppointmentService{appointments: appointments, location: location}
}

func (service *AppointmentService) Find(appointmentID uint) (models.Appointment, error) {
	appointment, err := service.appointments.FindByID(appointmentID)
	if err != nil {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (service *AppointmentService) ParseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(appointmentDateLayout, strings.TrimSpace(raw), service.location)
	if err != nil {
		return time.Time{}, ErrInvalidAppointmentDate
	}
	return parsed, nil
}

// Book creates a pending appointment after a single existence check against
// confirmed bookings for the same doctor, day and slot.
func (service *AppointmentService) Book(patientID uint, doctorID uint, date time.Time, timeSlot string, symptoms string) (models.Appointment, error) {
	timeSlot = strings.TrimSpace(timeSlot)
	if !validTimeSlot(timeSlot) {
		return models.Appointment{}, ErrInvalidTimeSlot
	}

	taken, err := service.appointments.ConfirmedSlotExists(doctorID, date, timeSlot)
	if err != nil {
		return models.Appointment{}, err
	}
	if taken {
		return models.Appointment{}, ErrSlotAlreadyBooked
	}

	appointment := models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  timeSlot,
		Symptoms:  strings.TrimSpace(symptoms),
		Status:    models.AppointmentPending,
	}
	if err := service.appointments.Create(&appointment); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

// AvailableSlots returns the fixed slot grid minus confirmed bookings.
func (service *AppointmentService) AvailableSlots(doctorID uint, date time.Time) ([]string, error) {
	booked, err := service.appointments.ListConfirmedSlots(doctorID, date)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		bookedSet[slot] = struct{}{}
	}

	available := make([]string, 0, len(defaultTimeSlots()))
	for _, slot := range defaultTimeSlots() {
		if _, taken := bookedSet[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

func (service *AppointmentService) ListForPatient(patientID uint) ([]models.Appointment, error) {
	return service.appointments.ListByPatient(patientID)
}

func (service *AppointmentService) ListForDoctor(doctorID uint) ([]models.Appointment, error) {
	return service.appointments.ListByDoctor(doctorID)
}

func (service *AppointmentService) ListAll(limit int) ([]models.Appointment, error) {
	return service.appointments.ListAll(limit)
}

// Cancel marks an appointment cancelled. Non-admin callers must own it.
func (service *AppointmentService) Cancel(appointmentID uint, callerID uint, callerIsAdmin bool) error {
	appointment, err := service.appointments.FindByID(appointmentID)
	if err != nil {
		return ErrAppointmentNotFound
	}
	if !callerIsAdmin && appointment.PatientID != callerID {
		return ErrNotAppointmentOwner
	}
	return service.appointments.UpdateStatus(appointmentID, models.AppointmentCancelled, "")
}

// UpdateStatusForDoctor transitions an appointment belonging to the given
// doctor, optionally attaching consultation notes.
func (service *AppointmentService) UpdateStatusForDoctor(appointmentID uint, doctorID uint, status string, notes string) error {
	if !models.ValidAppointmentStatus(status) {
		return ErrInvalidAppointmentStatus
	}
	appointment, err := service.appointments.FindByID(appointmentID)
	if err != nil {
		return ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return ErrNotAppointmentOwner
	}
	return service.appointments.UpdateStatus(appointmentID, status, strings.TrimSpace(notes))
}

// UpdateStatusForAdmin transitions any appointment.
func (service *AppointmentService) UpdateStatusForAdmin(appointmentID uint, status string) error {
	if !models.ValidAppointmentStatus(status) {
		return ErrInvalidAppointmentStatus
	}
	if _, err := service.appointments.FindByID(appointmentID); err != nil {
		return ErrAppointmentNotFound
	}
	return service.appointments.UpdateStatus(appointmentID, status, "")
}

type DoctorDashboard struct {
	Today     []models.Appointment
	Upcoming  []models.Appointment
	Total     int
	Pending   int
	Confirmed int
	Completed int
}

// DashboardForDoctor splits the doctor's appointments into today's and
// upcoming lists and tallies status counts.
func (service *AppointmentService) DashboardForDoctor(doctorID uint, now time.Time) (DoctorDashboard, error) {
	appointments, err := service.appointments.ListByDoctor(doctorID)
	if err != nil {
		return DoctorDashboard{}, err
	}

	today := startOfDay(now.In(service.location))
	dashboard := DoctorDashboard{
		Today:    make([]models.Appointment, 0),
		Upcoming: make([]models.Appointment, 0),
		Total:    len(appointments),
	}
	for _, appointment := range appointments {
		switch appointment.Status {
		case models.AppointmentPending:
			dashboard.Pending++
		case models.AppointmentConfirmed:
			dashboard.Confirmed++
		case models.AppointmentCompleted:
			dashboard.Completed++
		}

		day := startOfDay(appointment.Date.In(service.location))
		switch {
		case day.Equal(today):
			dashboard.Today = append(dashboard.Today, appointment)
		case day.After(today) && appointment.Status != models.AppointmentCancelled:
			dashboard.Upcoming = append(dashboard.Upcoming, appointment)
		}
	}
	return dashboard, nil
}

func startOfDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func validTimeSlot(timeSlot string) bool {
	for _, slot := range defaultTimeSlots() {
		if slot == timeSlot {
			return true
		}
	}
	return false
}
