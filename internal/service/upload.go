package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTypeNotAllowed = errors.New("file type not allowed")
	ErrImageTooLarge  = errors.New("image exceeds the 5MB limit")
	ErrVideoTooLarge  = errors.New("video exceeds the 50MB limit")
)

const (
	MaxImageSize = 5 << 20
	MaxVideoSize = 50 << 20
)

var (
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	videoTypes = map[string]bool{
		"video/mp4":       true,
		"video/webm":      true,
		"video/ogg":       true,
		"video/quicktime": true,
	}
)

// UploadService validates and stores media uploads under the public
// uploads directory.
type UploadService struct {
	dir        string
	publicBase string
}

// NewUploadService creates an UploadService writing into dir. Stored
// files are addressed publicly under /uploads/.
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir, publicBase: "/uploads"}
}

// Save validates the MIME type and size, writes the file under a
// timestamp-prefixed name and returns its public path. size is the
// declared upload size; the byte stream is additionally capped at the
// allowed ceiling while copying.
func (s *UploadService) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	limit, err := sizeLimit(contentType, size)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(filename))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, limit+1))
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	if written > limit {
		os.Remove(dst)
		if imageTypes[contentType] {
			return "", ErrImageTooLarge
		}
		return "", ErrVideoTooLarge
	}

	return s.publicBase + "/" + name, nil
}

// sizeLimit returns the byte ceiling for the given MIME type, rejecting
// disallowed types and declared sizes over the ceiling up front.
func sizeLimit(contentType string, size int64) (int64, error) {
	switch {
	case imageTypes[contentType]:
		if size > MaxImageSize {
			return 0, ErrImageTooLarge
		}
		return MaxImageSize, nil
	case videoTypes[contentType]:
		if size > MaxVideoSize {
			return 0, ErrVideoTooLarge
		}
		return MaxVideoSize, nil
	default:
		return 0, ErrTypeNotAllowed
	}
}

// sanitizeFilename strips path components and anything outside a safe
// character set. An unusable name falls back to a generated one.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	cleaned := keepSafe(base)
	if cleaned == "" {
		cleaned = uuid.NewString()
	}
	return cleaned + strings.ToLower(keepSafe(ext))
}

func keepSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
