package services

import (
	"errors"
	"strings"
	"time"

	"shoe-store/models"
	"shoe-store/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const RoleAdmin = "admin"

// AuthService signs in the single catalog administrator configured
// through ADMIN_EMAIL and ADMIN_PASSWORD_HASH.
type AuthService struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
	jwtExpiry         time.Duration
}

func NewAuthService(adminEmail, adminPasswordHash, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		jwtExpiry:         jwtExpiry,
	}
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.adminEmail) {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(s.adminPasswordHash, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, s.adminEmail, RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtExpiry),
	}, nil
}
