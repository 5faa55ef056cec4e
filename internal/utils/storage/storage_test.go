package storage

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		wantErr     error
	}{
		{"jpeg ok", "a.jpg", "image/jpeg", 1024, nil},
		{"png ok", "a.png", "image/png", MaxImageSize, nil},
		{"webp ok", "a.webp", "image/webp", 10, nil},
		{"uppercase extension ok", "A.PNG", "image/png", 10, nil},
		{"too large", "a.png", "image/png", MaxImageSize + 1, ErrFileTooLarge},
		{"extension denied", "a.exe", "image/png", 10, ErrExtensionDenied},
		{"mime denied", "a.png", "text/html", 10, ErrMimeDenied},
		{"both denied, extension reported", "a.exe", "text/html", 10, ErrExtensionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(header(tt.filename, tt.contentType, tt.size))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateImage(%q, %q, %d) = %v, want %v",
					tt.filename, tt.contentType, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestExtensionAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.PNG", true},
		{"photo.gif", true},
		{"photo.webp", true},
		{"photo.exe", false},
		{"photo", false},
		{"photo.png.exe", false},
	}

	for _, tt := range tests {
		if got := ExtensionAllowed(tt.filename, AllowImage...); got != tt.want {
			t.Errorf("ExtensionAllowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
