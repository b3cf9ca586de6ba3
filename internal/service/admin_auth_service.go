package service

import (
	"context"
	"net/mail"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/WaslIoT/wasl_api/internal/models"
	"github.com/WaslIoT/wasl_api/internal/repository"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

type AdminAuthService struct {
	adminRepo *repository.AdminUserRepository
}

func NewAdminAuthService(adminRepo *repository.AdminUserRepository) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo}
}

// Login verifies admin credentials and issues a JWT. Errors are sentinel
// values so the handler can map them to the localized login messages
// (malformed email, bad credentials, inactive account).
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", utils.ErrInvalidEmail
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn().Str("email", email).Msg("login: unknown email")
		return "", utils.ErrBadCredentials
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("login: inactive account")
		return "", utils.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("login: password mismatch")
		return "", utils.ErrBadCredentials
	}

	if err := s.adminRepo.TouchLastLogin(ctx, user.ID); err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("login: last_login_at update failed")
	}

	log.Info().Str("email", email).Msg("login successful")
	return utils.GenerateJWT(user.ID, user.Email)
}

// CreateAdmin registers a new admin user with a bcrypt-hashed password.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, password, name string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		IsActive:     true,
	}

	return s.adminRepo.Create(ctx, user)
}
