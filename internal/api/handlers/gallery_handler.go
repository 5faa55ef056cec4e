package handlers

import (
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/internal/api/presenters"
	"Trattoria-Backend/pkg/gallery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GalleryHandler interface {
		GetImages(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
		DeleteImage(c *fiber.Ctx) error
	}

	galleryHandler struct {
		galleryService gallery.GalleryService
		validator      *validator.Validate
	}
)

func NewGalleryHandler(galleryService gallery.GalleryService, validator *validator.Validate) GalleryHandler {
	return &galleryHandler{
		galleryService: galleryService,
		validator:      validator,
	}
}

func (h *galleryHandler) GetImages(c *fiber.Ctx) error {
	images, err := h.galleryService.ListImages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetImages, err)
	}
	return presenters.SuccessResponse(c, images, fiber.StatusOK)
}

func (h *galleryHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoFileUploaded, err)
	}

	req := domain.UploadImageRequest{
		Image:   file,
		Caption: c.FormValue("caption"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoFileUploaded, err)
	}

	res, err := h.galleryService.UploadImage(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTooLarge):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFileTooLarge, err)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidImageType, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
		}
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *galleryHandler) DeleteImage(c *fiber.Ctx) error {
	err := h.galleryService.DeleteImage(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteImage, err)
		case errors.Is(err, domain.ErrImageNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageImageNotFound, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteImage, err)
		}
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteImage)
}
