// Package storage persists uploaded files under the media root. Rows in
// the images table store the returned relative path.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Save writes an uploaded file into subdir under mediaRoot with a unique
// name and returns the path relative to mediaRoot.
func Save(file *multipart.FileHeader, mediaRoot, subdir string) (string, error) {
	src, err := file.Open()

	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	relPath := filepath.Join(subdir, name)
	fullPath := filepath.Join(mediaRoot, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dst, err := os.Create(fullPath)

	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return relPath, nil
}

// Remove deletes a stored file; a missing file is not an error.
func Remove(mediaRoot, relPath string) error {
	err := os.Remove(filepath.Join(mediaRoot, relPath))

	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
