package db

import (
	"strings"

	"github.com/care4u/care4u/internal/models"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	database *gorm.DB
}

func NewDoctorRepository(database *gorm.DB) *DoctorRepository {
	return &DoctorRepository{database: database}
}

func (repo *DoctorRepository) FindByID(doctorID uint) (models.Doctor, error) {
	var doctor models.Doctor
	if err := repo.database.First(&doctor, doctorID).Error; err != nil {
		return models.Doctor{}, err
	}
	return doctor, nil
}

func (repo *DoctorRepository) ListAvailable(specialization string, search string) ([]models.Doctor, error) {
	query := repo.database.Where("is_available = ?", true)

	specialization = strings.TrimSpace(specialization)
	if specialization != "" && !strings.EqualFold(specialization, "all") {
		query = query.Where("specialization = ?", specialization)
	}

	search = strings.TrimSpace(search)
	if search != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	doctors := make([]models.Doctor, 0)
	if err := query.Order("name").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (repo *DoctorRepository) ListSpecializations() ([]string, error) {
	specializations := make([]string, 0)
	if err := repo.database.Model(&models.Doctor{}).
		Distinct("specialization").
		Order("specialization").
		Pluck("specialization", &specializations).Error; err != nil {
		return nil, err
	}
	return specializations, nil
}

func (repo *DoctorRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Doctor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *DoctorRepository) Create(doctor *models.Doctor) error {
	return repo.database.Create(doctor).Error
}

func (repo *DoctorRepository) CreateBatch(doctors []models.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return repo.database.Create(&doctors).Error
}
