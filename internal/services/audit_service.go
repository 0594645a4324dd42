package services

import (
	"log"
	"time"

	"github.com/care4u/care4u/internal/models"
	"github.com/google/uuid"
)

type AuditLogStore interface {
	Create(entry *models.AuditLog) error
	ListRecent(limit int) ([]models.AuditLog, error)
}

// AuditService records sensitive actions. Write failures are logged and
// swallowed so auditing can never fail the action being audited.
type AuditService struct {
	logs AuditLogStore
}

func NewAuditService(logs AuditLogStore) *AuditService {
	return &AuditService{logs: logs}
}

func (service *AuditService) Record(actor string, action string, resource string, details string) {
	if service == nil || service.logs == nil {
		return
	}
	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Resource:  resource,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := service.logs.Create(&entry); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

func (service *AuditService) Recent(limit int) ([]models.AuditLog, error) {
	return service.logs.ListRecent(limit)
}
