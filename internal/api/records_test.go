package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/care4u/care4u/internal/models"
	"github.com/gofiber/fiber/v2"
)

func uploadRecord(t *testing.T, app *fiber.App, authCookie string, fileName string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/records", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	return response
}

func TestUploadListAndDownloadRecord(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	content := []byte("%PDF-1.4 lab results")
	response := uploadRecord(t, app, cookie, "lab-results.pdf", content)
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	uploaded := decodeBody(t, response)
	if uploaded["file_name"] != "lab-results.pdf" {
		t.Fatalf("unexpected upload payload: %v", uploaded)
	}

	listed := getJSON(t, app, cookie, "/api/records", http.StatusOK)
	records, ok := listed["records"].([]any)
	if !ok || len(records) != 1 {
		t.Fatalf("expected one record, got %v", listed["records"])
	}

	recordID := uint(uploaded["id"].(float64))
	downloadRequest := httptest.NewRequest(http.MethodGet, "/api/records/"+itoa(recordID)+"/download", nil)
	downloadRequest.Header.Set("Cookie", cookie)
	downloadResponse, err := app.Test(downloadRequest, -1)
	if err != nil {
		t.Fatalf("download request failed: %v", err)
	}
	defer downloadResponse.Body.Close()
	if downloadResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", downloadResponse.StatusCode)
	}
	downloaded, err := io.ReadAll(downloadResponse.Body)
	if err != nil {
		t.Fatalf("read downloaded body: %v", err)
	}
	if !bytes.Equal(downloaded, content) {
		t.Fatalf("downloaded body mismatch: %q", downloaded)
	}
}

func TestUploadRejectsDisallowedFileType(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	response := uploadRecord(t, app, cookie, "malware.exe", []byte("MZ"))
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestRecordsHiddenFromOtherPatients(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "pat@example.com", "StrongPass1", models.RolePatient)
	createTestUser(t, database, "other@example.com", "StrongPass1", models.RolePatient)
	cookie := loginCookie(t, app, "pat@example.com", "StrongPass1")

	response := uploadRecord(t, app, cookie, "scan.png", []byte{0x89, 'P', 'N', 'G'})
	defer response.Body.Close()
	uploaded := decodeBody(t, response)
	recordID := uint(uploaded["id"].(float64))

	otherCookie := loginCookie(t, app, "other@example.com", "StrongPass1")
	listed := getJSON(t, app, otherCookie, "/api/records", http.StatusOK)
	if records, ok := listed["records"].([]any); !ok || len(records) != 0 {
		t.Fatalf("expected no records for other patient, got %v", listed["records"])
	}

	downloadRequest := httptest.NewRequest(http.MethodGet, "/api/records/"+itoa(recordID)+"/download", nil)
	downloadRequest.Header.Set("Cookie", otherCookie)
	downloadResponse, err := app.Test(downloadRequest, -1)
	if err != nil {
		t.Fatalf("download request failed: %v", err)
	}
	defer downloadResponse.Body.Close()
	if downloadResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for other patient, got %d", downloadResponse.StatusCode)
	}
}
