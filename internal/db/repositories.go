package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Doctors      *DoctorRepository
	Appointments *AppointmentRepository
	Records      *MedicalRecordRepository
	AuditLogs    *AuditLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Doctors:      NewDoctorRepository(database),
		Appointments: NewAppointmentRepository(database),
		Records:      NewMedicalRecordRepository(database),
		AuditLogs:    NewAuditLogRepository(database),
	}
}
