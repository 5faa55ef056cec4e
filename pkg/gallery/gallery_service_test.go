package gallery

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"
)

type fakeGalleryRepository struct {
	images    map[string]entities.GalleryImage
	createErr error
}

func newFakeGalleryRepository() *fakeGalleryRepository {
	return &fakeGalleryRepository{images: make(map[string]entities.GalleryImage)}
}

func (f *fakeGalleryRepository) ListImages(context.Context) ([]entities.GalleryImage, error) {
	var images []entities.GalleryImage
	for _, image := range f.images {
		images = append(images, image)
	}
	return images, nil
}

func (f *fakeGalleryRepository) GetImageByID(_ context.Context, id string) (*entities.GalleryImage, error) {
	image, ok := f.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return &image, nil
}

func (f *fakeGalleryRepository) CreateImage(_ context.Context, image *entities.GalleryImage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.images[image.ID.String()] = *image
	return nil
}

func (f *fakeGalleryRepository) DeleteImage(_ context.Context, id string) error {
	if _, ok := f.images[id]; !ok {
		return domain.ErrImageNotFound
	}
	delete(f.images, id)
	return nil
}

type fakeStorage struct {
	uploads   []string
	deletes   []string
	deleteErr error
}

func (f *fakeStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	ext := file.Filename[strings.LastIndex(file.Filename, "."):]
	key := folder + "/" + fileName + ext
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deletes = append(f.deletes, objectKey)
	return f.deleteErr
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "/assets/uploads/" + objectKey
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

func TestUploadRejectsOversizeBeforeBlobWrite(t *testing.T) {
	blob := &fakeStorage{}
	svc := NewGalleryService(newFakeGalleryRepository(), blob)

	_, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
		Image: fileHeader("big.png", "image/png", 6*1024*1024),
	})
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Errorf("UploadImage(6MiB) = %v, want ErrFileTooLarge", err)
	}
	if len(blob.uploads) != 0 {
		t.Errorf("blob writes = %d, want 0 before validation passes", len(blob.uploads))
	}
}

func TestUploadRejectsExtensionMimeMismatch(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"bad extension good mime", "photo.exe", "image/png"},
		{"good extension bad mime", "photo.png", "application/octet-stream"},
		{"no extension", "photo", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := &fakeStorage{}
			svc := NewGalleryService(newFakeGalleryRepository(), blob)

			_, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
				Image: fileHeader(tt.filename, tt.contentType, 1024),
			})
			if !errors.Is(err, domain.ErrInvalidImageFormat) {
				t.Errorf("UploadImage = %v, want ErrInvalidImageFormat", err)
			}
			if len(blob.uploads) != 0 {
				t.Errorf("blob writes = %d, want 0", len(blob.uploads))
			}
		})
	}
}

func TestUploadStoresBlobThenMetadata(t *testing.T) {
	repo := newFakeGalleryRepository()
	blob := &fakeStorage{}
	svc := NewGalleryService(repo, blob)

	res, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
		Image:   fileHeader("dining-room.jpg", "image/jpeg", 2048),
		Caption: "the dining room",
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	if len(blob.uploads) != 1 {
		t.Fatalf("blob writes = %d, want 1", len(blob.uploads))
	}
	if !strings.HasPrefix(res.Filename, "gallery-") || !strings.HasSuffix(res.Filename, ".jpg") {
		t.Errorf("filename = %q, want gallery-<ts>-<rand>.jpg", res.Filename)
	}
	if !strings.HasPrefix(res.Path, "/assets/uploads/gallery/") {
		t.Errorf("path = %q, want public uploads path", res.Path)
	}
	if res.Caption != "the dining room" {
		t.Errorf("caption = %q", res.Caption)
	}
	if len(repo.images) != 1 {
		t.Errorf("metadata rows = %d, want 1", len(repo.images))
	}
}

func TestUploadMetadataFailureLeavesBlobOrphaned(t *testing.T) {
	repo := newFakeGalleryRepository()
	repo.createErr = errors.New("insert failed")
	blob := &fakeStorage{}
	svc := NewGalleryService(repo, blob)

	_, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
		Image: fileHeader("terrace.png", "image/png", 1024),
	})
	if err == nil {
		t.Fatal("UploadImage succeeded despite metadata failure")
	}
	if len(blob.uploads) != 1 {
		t.Fatalf("blob writes = %d, want 1", len(blob.uploads))
	}
	// The orphan is accepted: no compensating delete.
	if len(blob.deletes) != 0 {
		t.Errorf("blob deletes = %d, want 0", len(blob.deletes))
	}
}

func TestDeleteImageRemovesBlobThenRow(t *testing.T) {
	repo := newFakeGalleryRepository()
	blob := &fakeStorage{}
	svc := NewGalleryService(repo, blob)

	res, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
		Image: fileHeader("bar.webp", "image/webp", 512),
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	if err := svc.DeleteImage(context.Background(), res.ID); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if len(blob.deletes) != 1 {
		t.Errorf("blob deletes = %d, want 1", len(blob.deletes))
	}
	if len(repo.images) != 0 {
		t.Errorf("metadata rows = %d, want 0", len(repo.images))
	}
}

func TestDeleteImageBlobFailureDoesNotBlockRowDelete(t *testing.T) {
	repo := newFakeGalleryRepository()
	blob := &fakeStorage{}
	svc := NewGalleryService(repo, blob)

	res, err := svc.UploadImage(context.Background(), domain.UploadImageRequest{
		Image: fileHeader("kitchen.gif", "image/gif", 512),
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	blob.deleteErr = errors.New("blob store down")
	if err := svc.DeleteImage(context.Background(), res.ID); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if len(repo.images) != 0 {
		t.Errorf("metadata rows = %d, want 0 after delete", len(repo.images))
	}
}

func TestDeleteImageUnknownID(t *testing.T) {
	svc := NewGalleryService(newFakeGalleryRepository(), &fakeStorage{})

	err := svc.DeleteImage(context.Background(), "d7f9a9c2-4f6e-4d5a-9aeb-2f45c1a9f001")
	if !errors.Is(err, domain.ErrImageNotFound) {
		t.Errorf("DeleteImage(unknown) = %v, want ErrImageNotFound", err)
	}

	err = svc.DeleteImage(context.Background(), "nope")
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("DeleteImage(bad id) = %v, want ErrParseUUID", err)
	}
}
