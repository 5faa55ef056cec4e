package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessDeleteImage = "Image deleted successfully"

	MessageFailedGetImages   = "Error fetching gallery images"
	MessageFailedUploadImage = "Error uploading image"
	MessageFailedDeleteImage = "Error deleting image"
	MessageImageNotFound     = "Image not found"
	MessageNoFileUploaded    = "No file uploaded"
	MessageFileTooLarge      = "File exceeds the 5MB limit"
	MessageInvalidImageType  = "Only image files are allowed"

	ErrImageNotFound      = errors.New("gallery image not found")
	ErrFileTooLarge       = errors.New("file exceeds maximum size")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	UploadImageRequest struct {
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		Caption string                `json:"caption" form:"caption"`
	}

	GalleryImageResponse struct {
		ID         string    `json:"id"`
		Filename   string    `json:"filename"`
		Path       string    `json:"path"`
		Caption    string    `json:"caption"`
		UploadedAt time.Time `json:"uploadedAt"`
	}
)
