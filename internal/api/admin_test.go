package api

import (
	"net/http"
	"testing"

	"github.com/care4u/care4u/internal/models"
)

func TestAdminStats(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "boss@example.com", "StrongPass1", models.RoleAdmin)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	createTestDoctor(t, database, "Dr. Sarah Johnson", "Cardiology")
	cookie := loginCookie(t, app, "boss@example.com", "StrongPass1")

	stats := getJSON(t, app, cookie, "/api/admin/stats", http.StatusOK)
	if stats["total_patients"] != float64(1) {
		t.Fatalf("expected 1 patient, got %v", stats["total_patients"])
	}
	if stats["total_doctors"] != float64(1) {
		t.Fatalf("expected 1 doctor, got %v", stats["total_doctors"])
	}
	if stats["total_appointments"] != float64(0) {
		t.Fatalf("expected 0 appointments, got %v", stats["total_appointments"])
	}
}

func TestAdminRoutesForbiddenForPatients(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	getJSON(t, app, cookie, "/api/admin/stats", http.StatusForbidden)
	getJSON(t, app, cookie, "/api/admin/audit-trail", http.StatusForbidden)
}

func TestAdminAddDoctorReturnsTemporaryPassword(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "boss@example.com", "StrongPass1", models.RoleAdmin)
	cookie := loginCookie(t, app, "boss@example.com", "StrongPass1")

	response := postJSON(t, app, cookie, "/api/admin/doctors", map[string]any{
		"name":             "Dr. Emily Davis",
		"specialization":   "Pediatrics",
		"qualifications":   "MD, FAAP",
		"experience":       10,
		"email":            "emily@example.com",
		"consultation_fee": 120,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	temporaryPassword, _ := payload["temporary_password"].(string)
	if len(temporaryPassword) != 12 {
		t.Fatalf("expected 12 character temporary password, got %q", temporaryPassword)
	}

	var login models.User
	if err := database.Where("username = ?", "dr_emily_davis").First(&login).Error; err != nil {
		t.Fatalf("expected provisioned doctor login: %v", err)
	}
	if login.Role != models.RoleDoctor || login.DoctorID == nil {
		t.Fatalf("unexpected doctor login: %+v", login)
	}

	response = postJSON(t, app, cookie, "/api/admin/doctors", map[string]any{
		"name": "Dr. No Specialty",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 without specialization, got %d", response.StatusCode)
	}
}

func TestAdminUpdateAppointmentStatus(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "boss@example.com", "StrongPass1", models.RoleAdmin)
	patient := createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	doctor := createTestDoctor(t, database, "Dr. Sarah Johnson", "Cardiology")

	appointment := models.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      mustParseDate(t, "2026-09-14"),
		TimeSlot:  "9:30 AM",
		Status:    models.AppointmentPending,
	}
	if err := database.Create(&appointment).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	cookie := loginCookie(t, app, "boss@example.com", "StrongPass1")
	response := putJSON(t, app, cookie, "/api/admin/appointments/"+itoa(appointment.ID)+"/status", map[string]any{
		"status": "confirmed",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var stored models.Appointment
	if err := database.First(&stored, appointment.ID).Error; err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if stored.Status != models.AppointmentConfirmed {
		t.Fatalf("expected confirmed status, got %q", stored.Status)
	}
}

func TestAdminAuditTrailRecordsActions(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "boss@example.com", "StrongPass1", models.RoleAdmin)
	cookie := loginCookie(t, app, "boss@example.com", "StrongPass1")

	response := postJSON(t, app, cookie, "/api/admin/doctors", map[string]any{
		"name":           "Dr. Michael Chen",
		"specialization": "Neurology",
	})
	response.Body.Close()

	trail := getJSON(t, app, cookie, "/api/admin/audit-trail", http.StatusOK)
	entries, ok := trail["entries"].([]any)
	if !ok || len(entries) == 0 {
		t.Fatalf("expected audit entries, got %v", trail["entries"])
	}

	found := false
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if ok && entry["action"] == "doctor.create" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected doctor.create entry in trail: %v", entries)
	}
}

func TestAdminInfrastructureUnavailableWithoutScanner(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "boss@example.com", "StrongPass1", models.RoleAdmin)
	cookie := loginCookie(t, app, "boss@example.com", "StrongPass1")

	getJSON(t, app, cookie, "/api/admin/infrastructure", http.StatusServiceUnavailable)
}
