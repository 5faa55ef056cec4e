package gallery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"
	"Trattoria-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const galleryFolder = "gallery"

type (
	GalleryService interface {
		ListImages(ctx context.Context) ([]domain.GalleryImageResponse, error)
		UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.GalleryImageResponse, error)
		DeleteImage(ctx context.Context, id string) error
	}

	galleryService struct {
		galleryRepository GalleryRepository
		blob              storage.Storage
	}
)

func NewGalleryService(galleryRepository GalleryRepository, blob storage.Storage) GalleryService {
	return &galleryService{
		galleryRepository: galleryRepository,
		blob:              blob,
	}
}

func imageResponse(image *entities.GalleryImage) domain.GalleryImageResponse {
	return domain.GalleryImageResponse{
		ID:         image.ID.String(),
		Filename:   image.Filename,
		Path:       image.Path,
		Caption:    image.Caption,
		UploadedAt: image.UploadedAt,
	}
}

func (s *galleryService) ListImages(ctx context.Context) ([]domain.GalleryImageResponse, error) {
	images, err := s.galleryRepository.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.GalleryImageResponse, 0, len(images))
	for i := range images {
		res = append(res, imageResponse(&images[i]))
	}
	return res, nil
}

// UploadImage validates the file, writes the blob, then records the
// metadata row. If the row insert fails the already-written blob is left
// orphaned on purpose; that gap is logged, not compensated.
func (s *galleryService) UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.GalleryImageResponse, error) {
	if err := storage.ValidateImage(req.Image); err != nil {
		switch err {
		case storage.ErrFileTooLarge:
			return domain.GalleryImageResponse{}, domain.ErrFileTooLarge
		default:
			return domain.GalleryImageResponse{}, domain.ErrInvalidImageFormat
		}
	}

	suffix := strings.Split(uuid.New().String(), "-")[0]
	fileName := fmt.Sprintf("gallery-%d-%s", time.Now().UnixMilli(), suffix)

	objectKey, err := s.blob.UploadFile(fileName, req.Image, galleryFolder, storage.AllowImage...)
	if err != nil {
		return domain.GalleryImageResponse{}, err
	}

	image := &entities.GalleryImage{
		ID:         uuid.New(),
		Filename:   objectKeyBase(objectKey),
		Path:       s.blob.GetPublicLinkKey(objectKey),
		Caption:    req.Caption,
		UploadedAt: time.Now(),
	}

	if err := s.galleryRepository.CreateImage(ctx, image); err != nil {
		log.Errorf("gallery metadata insert failed, blob %s orphaned: %v", objectKey, err)
		return domain.GalleryImageResponse{}, err
	}
	return imageResponse(image), nil
}

// DeleteImage removes the blob first and the row second. A blob removal
// failure is logged and does not block the metadata delete.
func (s *galleryService) DeleteImage(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	image, err := s.galleryRepository.GetImageByID(ctx, id)
	if err != nil {
		return err
	}

	objectKey := galleryFolder + "/" + image.Filename
	if err := s.blob.DeleteFile(objectKey); err != nil {
		log.Errorf("failed to delete blob %s: %v", objectKey, err)
	}

	return s.galleryRepository.DeleteImage(ctx, id)
}

func objectKeyBase(objectKey string) string {
	if idx := strings.LastIndex(objectKey, "/"); idx >= 0 {
		return objectKey[idx+1:]
	}
	return objectKey
}
