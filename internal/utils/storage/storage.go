package storage

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Storage persists raw upload bytes under folder/name.ext keys and resolves
// keys to publicly reachable paths. Implementations: AWS S3 and local disk.
type Storage interface {
	// UploadFile stores the file under folder using fileName (extension is
	// taken from the original filename) and returns the object key.
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
}

const MaxImageSize = 5 * 1024 * 1024

var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var allowedImageMime = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrExtensionDenied = errors.New("file extension not allowed")
	ErrMimeDenied      = errors.New("file content type not allowed")
)

// ValidateImage enforces the upload constraints before any bytes are
// written: size cap, extension whitelist AND declared content type. Both
// checks must pass.
func ValidateImage(file *multipart.FileHeader) error {
	if file.Size > MaxImageSize {
		return ErrFileTooLarge
	}
	if !ExtensionAllowed(file.Filename, AllowImage...) {
		return ErrExtensionDenied
	}
	if !allowedImageMime[strings.ToLower(file.Header.Get("Content-Type"))] {
		return ErrMimeDenied
	}
	return nil
}

func ExtensionAllowed(filename string, allowedExt ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExt {
		if ext == allowed {
			return true
		}
	}
	return false
}
