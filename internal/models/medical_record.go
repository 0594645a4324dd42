package models

import "time"

type MedicalRecord struct {
	ID          uint   `gorm:"primaryKey"`
	PatientID   uint   `gorm:"not null;index"`
	UploaderID  uint   `gorm:"not null"`
	FileName    string `gorm:"not null"`
	StorageKey  string `gorm:"uniqueIndex;not null"`
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
