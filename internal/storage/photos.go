package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/attendance-service/internal/config"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// PhotoStore writes attendance photos to a local uploads directory.
type PhotoStore struct {
	dir      string
	maxBytes int64
}

// NewPhotoStore ensures the uploads directory exists.
func NewPhotoStore(cfg config.UploadConfig) (*PhotoStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &PhotoStore{dir: cfg.Dir, maxBytes: cfg.MaxSizeBytes}, nil
}

// Save validates and stores an uploaded photo, returning the stored
// filename. The file must be an image and within the size limit.
func (s *PhotoStore) Save(employeeID int64, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", apperrors.NewValidationError("photo exceeds maximum size", map[string]any{
			"max_bytes": s.maxBytes,
		})
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return "", apperrors.NewValidationError("photo must be an image", nil)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("attendance_%d_%s%s", employeeID, uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored photo; missing files are ignored.
func (s *PhotoStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
