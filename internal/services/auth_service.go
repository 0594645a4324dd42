package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/care4u/care4u/internal/models"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUsername = errors.New("invalid username")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidAdminKey = errors.New("invalid admin registration key")
)

const maxUsernameLength = 80

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users    AuthUserRepository
	adminKey string
}

func NewAuthService(users AuthUserRepository, adminKey string) *AuthService {
	return &AuthService{users: users, adminKey: adminKey}
}

func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func NormalizeUsername(raw string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))
	if username == "" || len(username) > maxUsernameLength {
		return "", ErrInvalidUsername
	}
	return username, nil
}

// CheckRegistration validates that the normalized email and username are
// still free.
func (service *AuthService) CheckRegistration(email string, username string) error {
	emailTaken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return err
	}
	if emailTaken {
		return ErrEmailTaken
	}

	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if usernameTaken {
		return ErrUsernameTaken
	}
	return nil
}

// ResolveRole maps a requested role to the role the account is created with.
// Anyone may register as a patient; the admin role additionally requires the
// configured registration key.
func (service *AuthService) ResolveRole(requestedRole string, adminKey string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(requestedRole)) {
	case "", models.RolePatient:
		return models.RolePatient, nil
	case models.RoleAdmin:
		if service.adminKey == "" || adminKey != service.adminKey {
			return "", ErrInvalidAdminKey
		}
		return models.RoleAdmin, nil
	default:
		// Doctor logins are provisioned by admins, never self-registered.
		return models.RolePatient, nil
	}
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}
