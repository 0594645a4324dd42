package models

import "time"

type Doctor struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"not null"`
	Specialization  string    `gorm:"not null;index"`
	Qualifications  string
	Experience      int
	Phone           string
	Email           string
	ConsultationFee float64   `gorm:"not null;default:0"`
	AvailableDays   string    // e.g. "Mon,Wed,Fri"
	AvailableTime   string    // e.g. "9:00 AM - 5:00 PM"
	IsAvailable     bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
}
