package db

import (
	"github.com/care4u/care4u/internal/models"
	"gorm.io/gorm"
)

type MedicalRecordRepository struct {
	database *gorm.DB
}

func NewMedicalRecordRepository(database *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{database: database}
}

func (repo *MedicalRecordRepository) Create(record *models.MedicalRecord) error {
	return repo.database.Create(record).Error
}

func (repo *MedicalRecordRepository) ListByPatient(patientID uint) ([]models.MedicalRecord, error) {
	records := make([]models.MedicalRecord, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *MedicalRecordRepository) FindByIDForPatient(recordID uint, patientID uint) (models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := repo.database.
		Where("id = ? AND patient_id = ?", recordID, patientID).
		First(&record).Error; err != nil {
		return models.MedicalRecord{}, err
	}
	return record, nil
}
