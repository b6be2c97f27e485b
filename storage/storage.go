// Package storage handles file storage for avatar uploads. Files land on
// local disk under a configured directory; the stored path is what gets
// persisted on the user record.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores uploaded files on the local filesystem.
type Local struct {
	dir string
}

// NewLocal creates a Local store rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Save writes the uploaded content to disk under a random UUID filename,
// keeping the extension of the original name. It returns the relative path
// to persist. The target directory is created on first use.
func (l *Local) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.NewString() + ext

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(l.dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}
