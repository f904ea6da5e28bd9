package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/storage"
)

// FileService uploads attendance proof photos and resolves their URLs.
type FileService interface {
	// UploadProof stores a clock-in/out proof photo and returns the stored path.
	UploadProof(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// GetFileURL resolves a stored path to its public URL.
	GetFileURL(path string) string

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadProof implements FileService.
func (s *fileServiceImpl) UploadProof(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("attendance/%s/%s/%s%s",
		employeeID,
		time.Now().Format("2006-01"),
		uuid.New().String(),
		ext,
	)

	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload proof photo: %w", err)
	}

	return stored, nil
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(path string) string {
	return s.storage.URL(path)
}

// Delete implements FileService.
func (s *fileServiceImpl) Delete(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
