package gallery

import (
	"context"
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"

	"gorm.io/gorm"
)

type (
	GalleryRepository interface {
		ListImages(ctx context.Context) ([]entities.GalleryImage, error)
		GetImageByID(ctx context.Context, id string) (*entities.GalleryImage, error)
		CreateImage(ctx context.Context, image *entities.GalleryImage) error
		DeleteImage(ctx context.Context, id string) error
	}

	galleryRepository struct {
		db *gorm.DB
	}
)

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) ListImages(ctx context.Context) ([]entities.GalleryImage, error) {
	var images []entities.GalleryImage
	if err := r.db.WithContext(ctx).
		Order("uploaded_at desc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) GetImageByID(ctx context.Context, id string) (*entities.GalleryImage, error) {
	var image entities.GalleryImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) CreateImage(ctx context.Context, image *entities.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) DeleteImage(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GalleryImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
