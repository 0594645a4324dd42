package models

import "time"

type AuditLog struct {
	ID        string `gorm:"primaryKey"`
	Actor     string `gorm:"not null;index"`
	Action    string `gorm:"not null"`
	Resource  string `gorm:"not null"`
	Details   string
	CreatedAt time.Time `gorm:"not null"`
}
