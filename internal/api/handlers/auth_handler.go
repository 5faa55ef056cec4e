package handlers

import (
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/internal/api/presenters"
	"Trattoria-Backend/internal/middleware"
	"Trattoria-Backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Verify(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalError, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *authHandler) Verify(c *fiber.Ctx) error {
	token := middleware.ExtractBearerToken(c)
	if !h.authService.VerifyToken(token) {
		return c.Status(fiber.StatusUnauthorized).JSON(domain.VerifyResponse{Valid: false})
	}
	return presenters.SuccessResponse(c, domain.VerifyResponse{Valid: true}, fiber.StatusOK)
}
