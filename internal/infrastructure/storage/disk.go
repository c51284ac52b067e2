package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStorage lưu blobs trên local filesystem; router serve read-only
// dưới baseURL (mặc định /uploads).
type DiskStorage struct {
	dir     string
	baseURL string
}

// NewDiskStorage tạo uploads directory nếu chưa có.
func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Dir returns the directory served by the static route.
func (s *DiskStorage) Dir() string {
	return s.dir
}

func (s *DiskStorage) Save(_ context.Context, prefix string, data []byte, contentType, originalFilename string) (string, error) {
	if !IsImageType(contentType) {
		return "", ErrUnsupportedMediaType
	}

	name := objectName(prefix, contentType, originalFilename)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not save file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
