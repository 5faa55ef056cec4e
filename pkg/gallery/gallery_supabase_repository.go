package gallery

import (
	"context"
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type gallerySupabaseRepository struct {
	pool *pgxpool.Pool
}

func NewGallerySupabaseRepository(pool *pgxpool.Pool) GalleryRepository {
	return &gallerySupabaseRepository{pool: pool}
}

func (r *gallerySupabaseRepository) ListImages(ctx context.Context) ([]entities.GalleryImage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, filename, path, caption, uploaded_at FROM gallery_images
		ORDER BY uploaded_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []entities.GalleryImage
	for rows.Next() {
		var image entities.GalleryImage
		var rawID string
		if err := rows.Scan(&rawID, &image.Filename, &image.Path, &image.Caption, &image.UploadedAt); err != nil {
			return nil, err
		}
		if image.ID, err = uuid.Parse(rawID); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

func (r *gallerySupabaseRepository) GetImageByID(ctx context.Context, id string) (*entities.GalleryImage, error) {
	var image entities.GalleryImage
	var rawID string
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, filename, path, caption, uploaded_at FROM gallery_images
		WHERE id = $1`,
		id,
	).Scan(&rawID, &image.Filename, &image.Path, &image.Caption, &image.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	if image.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *gallerySupabaseRepository) CreateImage(ctx context.Context, image *entities.GalleryImage) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO gallery_images (id, filename, path, caption, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		image.ID, image.Filename, image.Path, image.Caption, image.UploadedAt,
	)
	return err
}

func (r *gallerySupabaseRepository) DeleteImage(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
