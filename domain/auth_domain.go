package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "Login successful"

	MessageFailedLogin = "Invalid credentials"

	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}

	VerifyResponse struct {
		Valid bool `json:"valid"`
	}
)
