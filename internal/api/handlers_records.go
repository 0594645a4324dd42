package api

import (
	"errors"
	"fmt"
	"io"

	"github.com/care4u/care4u/internal/models"
	"github.com/care4u/care4u/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxRecordUploadBytes = 16 << 20

func (handler *Handler) UploadRecord(c *fiber.Ctx) error {
	if !handler.documentsEnabled {
		return apiError(c, fiber.StatusServiceUnavailable, "document storage is not configured")
	}
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "missing file")
	}
	if fileHeader.Size > maxRecordUploadBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	record, err := handler.recordService.Upload(
		c.Context(),
		user.ID,
		user.ID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	switch {
	case errors.Is(err, services.ErrUnsupportedFileType):
		return apiError(c, fiber.StatusBadRequest, "only pdf, png, jpg, jpeg and gif files are accepted")
	case errors.Is(err, services.ErrEmptyUpload):
		return apiError(c, fiber.StatusBadRequest, "empty file")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to store document")
	}

	handler.audit.Record(user.Username, "record.upload", recordResource(record.ID), record.FileName)
	return c.Status(fiber.StatusCreated).JSON(recordView(&record))
}

func (handler *Handler) GetMyRecords(c *fiber.Ctx) error {
	if !handler.documentsEnabled {
		return apiError(c, fiber.StatusServiceUnavailable, "document storage is not configured")
	}
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.recordService.ListForPatient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	views := make([]fiber.Map, 0, len(records))
	for index := range records {
		views = append(views, recordView(&records[index]))
	}
	return c.JSON(fiber.Map{"records": views})
}

func (handler *Handler) DownloadRecord(c *fiber.Ctx) error {
	if !handler.documentsEnabled {
		return apiError(c, fiber.StatusServiceUnavailable, "document storage is not configured")
	}
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	record, body, err := handler.recordService.OpenForPatient(c.Context(), recordID, user.ID)
	if errors.Is(err, services.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "record not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to open document")
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read document")
	}

	if record.ContentType != "" {
		c.Set(fiber.HeaderContentType, record.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", record.FileName))
	return c.Send(data)
}

func recordView(record *models.MedicalRecord) fiber.Map {
	return fiber.Map{
		"id":           record.ID,
		"file_name":    record.FileName,
		"content_type": record.ContentType,
		"size_bytes":   record.SizeBytes,
		"created_at":   record.CreatedAt.Format("2006-01-02"),
	}
}
