package services

import (
	"fmt"
	"time"

	"github.com/care4u/care4u/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SetupUserStore interface {
	CountByRole(role string) (int64, error)
	Create(user *models.User) error
}

type SetupDoctorStore interface {
	Count() (int64, error)
}

// DoctorProvisioner creates a doctor profile plus its linked login account.
type DoctorProvisioner interface {
	CreateWithLogin(doctor *models.Doctor) (string, error)
}

// SetupService seeds the first admin account and a set of sample doctors
// with linked doctor logins on an empty database.
type SetupService struct {
	users       SetupUserStore
	doctors     SetupDoctorStore
	provisioner DoctorProvisioner
}

func NewSetupService(users SetupUserStore, doctors SetupDoctorStore, provisioner DoctorProvisioner) *SetupService {
	return &SetupService{users: users, doctors: doctors, provisioner: provisioner}
}

// SeededCredentials carries the generated one-time passwords back to the
// operator. Empty when nothing had to be seeded.
type SeededCredentials struct {
	AdminPassword   string
	DoctorPasswords map[string]string
}

func (service *SetupService) EnsureSeedData(adminEmail string, generatePassword func() (string, error)) (SeededCredentials, error) {
	credentials := SeededCredentials{DoctorPasswords: make(map[string]string)}

	adminCount, err := service.users.CountByRole(models.RoleAdmin)
	if err != nil {
		return credentials, fmt.Errorf("count admins: %w", err)
	}
	if adminCount == 0 {
		password, err := generatePassword()
		if err != nil {
			return credentials, err
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return credentials, err
		}
		admin := models.User{
			Username:     "admin",
			Email:        adminEmail,
			PasswordHash: string(passwordHash),
			Role:         models.RoleAdmin,
			CreatedAt:    time.Now(),
		}
		if err := service.users.Create(&admin); err != nil {
			return credentials, fmt.Errorf("create admin: %w", err)
		}
		credentials.AdminPassword = password
	}

	doctorCount, err := service.doctors.Count()
	if err != nil {
		return credentials, fmt.Errorf("count doctors: %w", err)
	}
	if doctorCount == 0 {
		for _, doctor := range sampleDoctors() {
			seeded := doctor
			temporaryPassword, err := service.provisioner.CreateWithLogin(&seeded)
			if err != nil {
				return credentials, fmt.Errorf("seed doctor %s: %w", doctor.Name, err)
			}
			credentials.DoctorPasswords[seeded.Name] = temporaryPassword
		}
	}

	return credentials, nil
}

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiology",
			Qualifications:  "MD, FACC",
			Experience:      15,
			Phone:           "+1-555-0101",
			Email:           "sarah.j@care4u.com",
			ConsultationFee: 150,
			AvailableDays:   "Mon,Tue,Wed,Thu",
			AvailableTime:   "9:00 AM - 4:00 PM",
		},
		{
			Name:            "Dr. Michael Chen",
			Specialization:  "Neurology",
			Qualifications:  "MD, PhD",
			Experience:      12,
			Phone:           "+1-555-0102",
			Email:           "michael.c@care4u.com",
			ConsultationFee: 180,
			AvailableDays:   "Tue,Wed,Thu,Fri",
			AvailableTime:   "10:00 AM - 6:00 PM",
		},
		{
			Name:            "Dr. Emily Davis",
			Specialization:  "Pediatrics",
			Qualifications:  "MD, FAAP",
			Experience:      8,
			Phone:           "+1-555-0103",
			Email:           "emily.d@care4u.com",
			ConsultationFee: 120,
			AvailableDays:   "Mon,Tue,Thu,Fri",
			AvailableTime:   "8:00 AM - 3:00 PM",
		},
	}
}
