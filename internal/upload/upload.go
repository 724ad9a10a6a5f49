// Package upload stores photo attachments on the local filesystem. Only
// filenames travel through the record store; the binaries live here.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-photo upload limit.
const MaxFileSize = 5 << 20 // 5MB

var (
	// ErrFileTooLarge is returned when an upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds 5MB limit")
	// ErrUnsupportedType is returned for anything but jpeg/jpg/png.
	ErrUnsupportedType = errors.New("only images (jpeg, jpg, png) are allowed")
)

var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Saver writes uploaded photos into a single directory with generated
// unique filenames.
type Saver struct {
	dir string
}

// NewSaver ensures the upload directory exists and returns a Saver for it.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// Dir returns the upload directory path.
func (s *Saver) Dir() string {
	return s.dir
}

// Save validates and stores one uploaded photo, returning the generated
// filename to persist as record metadata.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime, ok := allowedTypes[ext]
	if !ok {
		return "", ErrUnsupportedType
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != mime {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}
