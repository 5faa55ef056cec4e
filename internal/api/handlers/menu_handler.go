package handlers

import (
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/internal/api/presenters"
	"Trattoria-Backend/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItemsByCategory(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, categories, fiber.StatusOK)
}

func (h *menuHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.menuService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *menuHandler) DeleteCategory(c *fiber.Ctx) error {
	err := h.menuService.DeleteCategory(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
		case errors.Is(err, domain.ErrCategoryNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageCategoryNotFound, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteCategory, err)
		}
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	items, err := h.menuService.ListMenuItems(c.Context(), "")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *menuHandler) GetMenuItemsByCategory(c *fiber.Ctx) error {
	items, err := h.menuService.ListMenuItems(c.Context(), c.Params("categoryId"))
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *menuHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.MenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenuItem, err)
	}

	res, err := h.menuService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID), errors.Is(err, domain.ErrCategoryNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCategoryDoesNotExist, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMenuItem, err)
		}
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	req := new(domain.MenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	res, err := h.menuService.UpdateMenuItem(c.Context(), c.Params("id"), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
		case errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		case errors.Is(err, domain.ErrCategoryNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCategoryDoesNotExist, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMenuItem, err)
		}
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	err := h.menuService.DeleteMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
		case errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenuItem, err)
		}
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.menuService.GetSettings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSettings, err)
	}
	return presenters.SuccessResponse(c, settings, fiber.StatusOK)
}

func (h *menuHandler) UpdateSettings(c *fiber.Ctx) error {
	req := new(domain.UpdateSettingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, err)
	}

	settings, err := h.menuService.UpdateSettings(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateSettings, err)
	}
	return presenters.SuccessResponse(c, settings, fiber.StatusOK)
}
