package auth

import (
	"context"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/internal/utils"
	"Trattoria-Backend/pkg/jwt"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		VerifyToken(token string) bool
	}

	authService struct {
		jwtService    jwt.JWTService
		adminUsername string
		adminPassword string
	}
)

func NewAuthService(jwtService jwt.JWTService) AuthService {
	return &authService{
		jwtService:    jwtService,
		adminUsername: utils.GetConfig("ADMIN_USERNAME"),
		adminPassword: utils.GetConfig("ADMIN_PASSWORD"),
	}
}

// Login checks the configured admin credential pair. Wrong username and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(_ context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if req.Username != s.adminUsername || req.Password != s.adminPassword {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenAdmin(req.Username, domain.RoleAdmin)
	return domain.LoginResponse{
		Token:   token,
		Message: domain.MessageSuccessLogin,
	}, nil
}

func (s *authService) VerifyToken(token string) bool {
	if token == "" {
		return false
	}
	_, _, err := s.jwtService.GetAdminByToken(token)
	return err == nil
}
