package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/care4u/care4u/internal/db"
	"github.com/care4u/care4u/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := GenerateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("GenerateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("GenerateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := GenerateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("GenerateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("GenerateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestRunResetPasswordCommandRewritesHash(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "care4u-reset-test.db")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	oldHash, err := bcrypt.GenerateFromPassword([]byte("OldPassword1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     "pat",
		Email:        "pat@example.com",
		PasswordHash: string(oldHash),
		Role:         models.RolePatient,
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if err := RunResetPasswordCommand(dbPath, "Pat@Example.com"); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}

	reopened, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	var stored models.User
	if err := reopened.Where("email = ?", "pat@example.com").First(&stored).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PasswordHash == string(oldHash) {
		t.Fatal("expected password hash to change")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("OldPassword1")); err == nil {
		t.Fatal("old password still valid after reset")
	}
}

func TestRunResetPasswordCommandValidatesEmail(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "care4u-reset-test.db")

	if err := RunResetPasswordCommand(dbPath, ""); err == nil {
		t.Fatal("expected error for empty email")
	}
	if err := RunResetPasswordCommand(dbPath, "not-an-email"); err == nil {
		t.Fatal("expected error for malformed email")
	}
}
