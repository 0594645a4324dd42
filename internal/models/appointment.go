package models

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

type Appointment struct {
	ID        uint      `gorm:"primaryKey"`
	PatientID uint      `gorm:"not null;index"`
	DoctorID  uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null;index:idx_doctor_slot"`
	TimeSlot  string    `gorm:"not null;index:idx_doctor_slot"`
	Symptoms  string
	Status    string `gorm:"not null;default:pending"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	default:
		return false
	}
}
