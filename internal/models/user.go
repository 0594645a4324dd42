package models

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	Role         string    `gorm:"not null;default:patient"`
	DoctorID     *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func (user *User) IsDoctor() bool {
	return user.Role == RoleDoctor
}

func (user *User) IsPatient() bool {
	return user.Role == RolePatient
}
