package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes blobs into a directory under the served static tree,
// so stored keys resolve to /assets/uploads/... public paths.
type LocalStorage struct {
	baseDir      string
	publicPrefix string
}

func NewLocalStorage(baseDir, publicPrefix string) *LocalStorage {
	return &LocalStorage{
		baseDir:      baseDir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}
}

func (l *LocalStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowedExt) > 0 && !ExtensionAllowed(file.Filename, allowedExt...) {
		return "", ErrExtensionDenied
	}

	dir := filepath.Join(l.baseDir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)
	dst, err := os.Create(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (l *LocalStorage) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(objectKey)))
}

func (l *LocalStorage) GetPublicLinkKey(objectKey string) string {
	return l.publicPrefix + "/" + objectKey
}
