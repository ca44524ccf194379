package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadDir is where media lands; routes serve it statically at /uploads.
const UploadDir = "uploads"

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

// SaveUpload stores one uploaded file under a fresh UUID name and returns
// the public URL path.
func SaveUpload(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedUploadExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	if err := os.MkdirAll(UploadDir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.New().String() + ext
	fullpath := filepath.Join(UploadDir, filename)

	out, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/" + filepath.ToSlash(fullpath), nil
}
