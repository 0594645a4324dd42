package api

import (
	"net/http"
	"testing"

	"github.com/care4u/care4u/internal/models"
)

func TestRegisterCreatesPatientAndSetsSession(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"username": "pat",
		"email":    "Pat@Example.com",
		"password": "StrongPass1",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := decodeBody(t, response)
	if payload["role"] != models.RolePatient {
		t.Fatalf("expected patient role, got %v", payload["role"])
	}
	if payload["email"] != "pat@example.com" {
		t.Fatalf("expected normalized email, got %v", payload["email"])
	}

	hasAuthCookie := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			hasAuthCookie = true
		}
	}
	if !hasAuthCookie {
		t.Fatal("expected auth cookie after registration")
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"username": "pat",
		"email":    "pat@example.com",
		"password": "weak",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"username": "other",
		"email":    "pat@example.com",
		"password": "StrongPass1",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestRegisterAdminRequiresKey(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"username":  "boss",
		"email":     "boss@example.com",
		"password":  "StrongPass1",
		"role":      "admin",
		"admin_key": "wrong-key",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for wrong key, got %d", response.StatusCode)
	}

	response = postJSON(t, app, "", "/api/auth/register", map[string]any{
		"username":  "boss",
		"email":     "boss@example.com",
		"password":  "StrongPass1",
		"role":      "admin",
		"admin_key": testAdminRegistrationKey,
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 with valid key, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["role"] != models.RoleAdmin {
		t.Fatalf("expected admin role, got %v", payload["role"])
	}
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)

	response := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email":    "pat@example.com",
		"password": "WrongPass1",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLoginRateLimitedAfterRepeatedFailures(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		response := postJSON(t, app, "", "/api/auth/login", map[string]any{
			"email":    "pat@example.com",
			"password": "WrongPass1",
		})
		response.Body.Close()
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt, response.StatusCode)
		}
	}

	response := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email":    "pat@example.com",
		"password": "StrongPass1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after repeated failures, got %d", response.StatusCode)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	payload := getJSON(t, app, cookie, "/api/auth/me", http.StatusOK)
	if payload["email"] != "pat@example.com" {
		t.Fatalf("unexpected user payload: %v", payload)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	getJSON(t, app, "", "/api/appointments", http.StatusUnauthorized)
	getJSON(t, app, "", "/api/admin/stats", http.StatusUnauthorized)
}

func TestChangePassword(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	response := postJSON(t, app, cookie, "/api/auth/change-password", map[string]any{
		"current_password": "StrongPass1",
		"new_password":     "EvenStronger2",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	loginCookie(t, app, "pat@example.com", "EvenStronger2")
}
