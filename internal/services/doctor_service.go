package services

import (
	"errors"
	"strings"
	"time"

	"github.com/care4u/care4u/internal/models"
	"github.com/care4u/care4u/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidDoctorName           = errors.New("invalid doctor name")
	ErrInvalidDoctorSpecialization = errors.New("invalid specialization")
	ErrDoctorNotFound              = errors.New("doctor not found")
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

type DoctorStore interface {
	FindByID(doctorID uint) (models.Doctor, error)
	ListAvailable(specialization string, search string) ([]models.Doctor, error)
	ListSpecializations() ([]string, error)
	Create(doctor *models.Doctor) error
}

type DoctorUserStore interface {
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
}

type DoctorService struct {
	doctors DoctorStore
	users   DoctorUserStore
}

func NewDoctorService(doctors DoctorStore, users DoctorUserStore) *DoctorService {
	return &DoctorService{doctors: doctors, users: users}
}

func (service *DoctorService) FindByID(doctorID uint) (models.Doctor, error) {
	doctor, err := service.doctors.FindByID(doctorID)
	if err != nil {
		return models.Doctor{}, ErrDoctorNotFound
	}
	return doctor, nil
}

func (service *DoctorService) ListAvailable(specialization string, search string) ([]models.Doctor, error) {
	return service.doctors.ListAvailable(specialization, search)
}

func (service *DoctorService) ListSpecializations() ([]string, error) {
	return service.doctors.ListSpecializations()
}

// CreateWithLogin stores a doctor profile and provisions the linked doctor
// login with a generated temporary password, which is returned once for the
// admin to hand over.
func (service *DoctorService) CreateWithLogin(doctor *models.Doctor) (string, error) {
	doctor.Name = strings.TrimSpace(doctor.Name)
	doctor.Specialization = strings.TrimSpace(doctor.Specialization)
	if doctor.Name == "" {
		return "", ErrInvalidDoctorName
	}
	if doctor.Specialization == "" {
		return "", ErrInvalidDoctorSpecialization
	}
	doctor.IsAvailable = true

	if err := service.doctors.Create(doctor); err != nil {
		return "", err
	}

	username, err := service.loginUsername(doctor.Name)
	if err != nil {
		return "", err
	}

	temporaryPassword, err := security.RandomString(12, temporaryPasswordAlphabet)
	if err != nil {
		return "", err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	doctorID := doctor.ID
	login := models.User{
		Username:     username,
		Email:        doctor.Email,
		PasswordHash: string(passwordHash),
		Phone:        doctor.Phone,
		Role:         models.RoleDoctor,
		DoctorID:     &doctorID,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&login); err != nil {
		return "", err
	}
	return temporaryPassword, nil
}

// loginUsername derives a login name from the doctor's display name, adding a
// random suffix when the plain form is taken.
func (service *DoctorService) loginUsername(name string) (string, error) {
	base := strings.ToLower(name)
	base = strings.ReplaceAll(base, ".", "")
	base = strings.Join(strings.Fields(base), "_")
	if base == "" {
		base = "doctor"
	}

	taken, err := service.users.ExistsByUsername(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	suffix, err := security.RandomString(4, "23456789")
	if err != nil {
		return "", err
	}
	return base + "_" + suffix, nil
}
