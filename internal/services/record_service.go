package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/care4u/care4u/internal/models"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyUpload         = errors.New("empty upload")
	ErrRecordNotFound      = errors.New("record not found")
)

// allowedRecordExtensions is the upload allow-list for medical documents.
var allowedRecordExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// DocumentStore persists uploaded document bytes under a storage key.
type DocumentStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

type MedicalRecordStore interface {
	Create(record *models.MedicalRecord) error
	ListByPatient(patientID uint) ([]models.MedicalRecord, error)
	FindByIDForPatient(recordID uint, patientID uint) (models.MedicalRecord, error)
}

type RecordService struct {
	records   MedicalRecordStore
	documents DocumentStore
}

func NewRecordService(records MedicalRecordStore, documents DocumentStore) *RecordService {
	return &RecordService{records: records, documents: documents}
}

func ValidateRecordFileName(fileName string) error {
	extension := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if _, allowed := allowedRecordExtensions[extension]; !allowed {
		return ErrUnsupportedFileType
	}
	return nil
}

// Upload stores the document bytes and the record metadata. The storage key
// is random so original file names never leak into the store layout.
func (service *RecordService) Upload(ctx context.Context, patientID uint, uploaderID uint, fileName string, contentType string, body io.Reader, size int64) (models.MedicalRecord, error) {
	fileName = strings.TrimSpace(fileName)
	if err := ValidateRecordFileName(fileName); err != nil {
		return models.MedicalRecord{}, err
	}
	if size <= 0 {
		return models.MedicalRecord{}, ErrEmptyUpload
	}

	storageKey := uuid.NewString() + strings.ToLower(path.Ext(fileName))
	if err := service.documents.Put(ctx, storageKey, contentType, body, size); err != nil {
		return models.MedicalRecord{}, err
	}

	record := models.MedicalRecord{
		PatientID:   patientID,
		UploaderID:  uploaderID,
		FileName:    fileName,
		StorageKey:  storageKey,
		ContentType: contentType,
		SizeBytes:   size,
		CreatedAt:   time.Now(),
	}
	if err := service.records.Create(&record); err != nil {
		return models.MedicalRecord{}, err
	}
	return record, nil
}

func (service *RecordService) ListForPatient(patientID uint) ([]models.MedicalRecord, error) {
	return service.records.ListByPatient(patientID)
}

// OpenForPatient streams a stored document after checking it belongs to the
// patient.
func (service *RecordService) OpenForPatient(ctx context.Context, recordID uint, patientID uint) (models.MedicalRecord, io.ReadCloser, error) {
	record, err := service.records.FindByIDForPatient(recordID, patientID)
	if err != nil {
		return models.MedicalRecord{}, nil, ErrRecordNotFound
	}
	body, err := service.documents.Open(ctx, record.StorageKey)
	if err != nil {
		return models.MedicalRecord{}, nil, err
	}
	return record, body, nil
}
