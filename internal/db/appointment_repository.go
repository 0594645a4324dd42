package db

import (
	"time"

	"github.com/care4u/care4u/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) FindByID(appointmentID uint) (models.Appointment, error) {
	var appointment models.Appointment
	if err := repo.database.First(&appointment, appointmentID).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

// ConfirmedSlotExists reports whether a confirmed appointment already occupies
// the doctor's slot on the given day.
func (repo *AppointmentRepository) ConfirmedSlotExists(doctorID uint, date time.Time, timeSlot string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ? AND status = ?",
			doctorID, date, timeSlot, models.AppointmentConfirmed).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AppointmentRepository) ListConfirmedSlots(doctorID uint, date time.Time) ([]string, error) {
	slots := make([]string, 0)
	if err := repo.database.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status = ?", doctorID, date, models.AppointmentConfirmed).
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (repo *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("date DESC, time_slot DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("doctor_id = ?", doctorID).
		Order("date, time_slot").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListAll(limit int) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := repo.database.Order("date DESC, time_slot DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) UpdateStatus(appointmentID uint, status string, notes string) error {
	updates := map[string]any{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	return repo.database.Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(updates).Error
}

func (repo *AppointmentRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AppointmentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Appointment{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
