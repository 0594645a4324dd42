package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/care4u/care4u/internal/api"
	"github.com/care4u/care4u/internal/cli"
	"github.com/care4u/care4u/internal/cloud"
	"github.com/care4u/care4u/internal/db"
	"github.com/care4u/care4u/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "care4u.db"))

	if len(os.Args) > 2 && os.Args[1] == "reset-password" {
		if err := cli.RunResetPasswordCommand(dbPath, os.Args[2]); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	port := getEnv("PORT", "8080")
	adminEmail := getEnv("ADMIN_EMAIL", "admin@care4u.com")
	adminRegistrationKey := getEnv("ADMIN_REGISTRATION_KEY", "")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	options := api.Options{AdminRegistrationKey: adminRegistrationKey}

	region := getEnv("AWS_REGION", "")
	if region != "" {
		client, err := cloud.NewClient(context.Background(), region)
		if err != nil {
			log.Fatalf("aws init failed: %v", err)
		}
		if topicARN := getEnv("SNS_TOPIC_ARN", ""); topicARN != "" {
			options.Publisher = client.NewSNSPublisher(topicARN)
		}
		if bucket := getEnv("S3_BUCKET", ""); bucket != "" {
			options.Documents = client.NewS3DocumentStore(bucket)
		}
		if appTag := getEnv("EC2_APP_TAG", ""); appTag != "" {
			options.HealthScanner = client.NewHealthScanner("App", appTag)
		}
	}
	if options.Documents == nil {
		documents, err := cloud.NewLocalDocumentStore(getEnv("UPLOAD_DIR", filepath.Join("data", "uploads")))
		if err != nil {
			log.Fatalf("upload storage init failed: %v", err)
		}
		options.Documents = documents
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, options)

	seedInitialData(database, adminEmail)

	app := fiber.New(fiber.Config{
		AppName:               "Care4U",
		DisableStartupMessage: true,
		BodyLimit:             20 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Care4U listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// seedInitialData provisions the first admin and sample doctors on an empty
// database, logging the one-time credentials.
func seedInitialData(database *gorm.DB, adminEmail string) {
	repositories := db.NewRepositories(database)
	doctorService := services.NewDoctorService(repositories.Doctors, repositories.Users)
	setupService := services.NewSetupService(repositories.Users, repositories.Doctors, doctorService)

	credentials, err := setupService.EnsureSeedData(adminEmail, func() (string, error) {
		return cli.GenerateTemporaryPassword(12)
	})
	if err != nil {
		log.Fatalf("seed data failed: %v", err)
	}

	if credentials.AdminPassword != "" {
		log.Printf("seeded admin account %s with temporary password %s", adminEmail, credentials.AdminPassword)
	}
	for name, password := range credentials.DoctorPasswords {
		log.Printf("seeded doctor login for %s with temporary password %s", name, password)
	}
}

// resolveSecretKey refuses to start with a missing, placeholder or short
// signing key.
func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY still uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
