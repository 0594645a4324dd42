package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/care4u/care4u/internal/models"
)

// Publisher delivers a notification to the configured topic. The SNS-backed
// implementation lives in internal/cloud.
type Publisher interface {
	Publish(ctx context.Context, subject string, message string) error
}

// NotificationService formats and sends booking notifications. A nil
// publisher disables delivery; failures are logged and never fail the
// request that triggered them.
type NotificationService struct {
	publisher Publisher
}

func NewNotificationService(publisher Publisher) *NotificationService {
	return &NotificationService{publisher: publisher}
}

func (service *NotificationService) Enabled() bool {
	return service.publisher != nil
}

// NotifyBooking announces a new appointment. Emergency triage results add the
// urgent subject prefix.
func (service *NotificationService) NotifyBooking(ctx context.Context, patient models.User, doctor models.Doctor, appointment models.Appointment, emergency bool) {
	if service.publisher == nil {
		return
	}

	subject := "Appointment Booked"
	if emergency {
		subject = "[URGENT] " + subject
	}

	message := fmt.Sprintf("Patient %s booked %s on %s at %s.",
		patient.Username,
		doctor.Name,
		appointment.Date.Format("2006-01-02"),
		appointment.TimeSlot,
	)
	if emergency {
		message += " Symptom triage flagged a possible emergency."
	}

	if err := service.publisher.Publish(ctx, subject, message); err != nil {
		log.Printf("booking notification failed: %v", err)
	}
}

// NotifyStatusChange announces an appointment status transition to the topic.
func (service *NotificationService) NotifyStatusChange(ctx context.Context, appointment models.Appointment, status string) {
	if service.publisher == nil {
		return
	}

	subject := "Appointment " + capitalize(status)
	message := fmt.Sprintf("Appointment %d on %s at %s is now %s.",
		appointment.ID,
		appointment.Date.Format("2006-01-02"),
		appointment.TimeSlot,
		status,
	)
	if err := service.publisher.Publish(ctx, subject, message); err != nil {
		log.Printf("status notification failed: %v", err)
	}
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
