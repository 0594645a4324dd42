package db

import (
	"github.com/care4u/care4u/internal/models"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	database *gorm.DB
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{database: database}
}

func (repo *AuditLogRepository) Create(entry *models.AuditLog) error {
	return repo.database.Create(entry).Error
}

func (repo *AuditLogRepository) ListRecent(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	entries := make([]models.AuditLog, 0)
	if err := repo.database.
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
