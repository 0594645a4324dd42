package api

import (
	"context"
	"time"

	"github.com/care4u/care4u/internal/cloud"
	"github.com/care4u/care4u/internal/db"
	"github.com/care4u/care4u/internal/services"
	"github.com/care4u/care4u/internal/triage"
	"gorm.io/gorm"
)

// InstanceHealthLister reports the compute instances backing the deployment.
// The EC2-backed implementation lives in internal/cloud.
type InstanceHealthLister interface {
	RunningInstances(ctx context.Context) ([]cloud.InstanceHealth, error)
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService        *services.AuthService
	doctorService      *services.DoctorService
	appointmentService *services.AppointmentService
	recordService      *services.RecordService
	notifications      *services.NotificationService
	audit              *services.AuditService

	triageEngine  *triage.Engine
	healthScanner InstanceHealthLister
	loginLimiter  *attemptLimiter

	documentsEnabled bool
}

// Options carries the optional integrations. Every field may be zero; the
// matching feature is then disabled rather than failing at startup.
type Options struct {
	AdminRegistrationKey string
	Publisher            services.Publisher
	Documents            services.DocumentStore
	HealthScanner        InstanceHealthLister
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, options Options) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		triageEngine: triage.NewEngine(triage.TaxonomyRevision2()),
		loginLimiter: newAttemptLimiter(),
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, options.AdminRegistrationKey)
	handler.doctorService = services.NewDoctorService(handler.repositories.Doctors, handler.repositories.Users)
	handler.appointmentService = services.NewAppointmentService(handler.repositories.Appointments, location)
	handler.notifications = services.NewNotificationService(options.Publisher)
	handler.audit = services.NewAuditService(handler.repositories.AuditLogs)
	handler.healthScanner = options.HealthScanner

	if options.Documents != nil {
		handler.recordService = services.NewRecordService(handler.repositories.Records, options.Documents)
		handler.documentsEnabled = true
	}

	return handler
}
