// File: services/staff/service.go
package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	staffRepo "suretydesk/database/repository/staff"
	"suretydesk/models"
	"suretydesk/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffService manages staff accounts and sessions.
type StaffService interface {
	Register(ctx context.Context, input models.Staff) (*models.Staff, error)
	Authenticate(ctx context.Context, email, password string) (string, *models.Staff, error)
	RevokeToken(ctx context.Context, token string) error
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
}

// DefaultStaffService is the production implementation of StaffService.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

// validatePassword enforces the minimum password policy: at least 8
// characters with an upper-case letter, a lower-case letter, and a digit.
func validatePassword(pw string) error {
	if len(pw) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain upper-case, lower-case and numeric characters")
	}
	return nil
}

// Register creates a staff account with a bcrypt-hashed password.
func (s *DefaultStaffService) Register(ctx context.Context, input models.Staff) (*models.Staff, error) {
	logger := utils.GetLogger()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Name == "" {
		return nil, errors.New("name and email are required")
	}
	if input.Role != utils.RoleAgent && input.Role != utils.RoleAdmin {
		input.Role = utils.RoleAgent
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.New("a staff account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	input.Password = ""
	input.PasswordHash = string(hash)
	input.CreatedAt = now
	input.UpdatedAt = now

	id, err := s.Repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}
	input.ID = id

	logger.Info("Staff account created",
		zap.String("staffID", input.ID), zap.String("role", input.Role))
	return &input, nil
}

// Authenticate checks the credentials and issues a session token. The token's
// hash is cached in Redis so sessions can be revoked before expiry.
func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (string, *models.Staff, error) {
	logger := utils.GetLogger()

	email = strings.ToLower(strings.TrimSpace(email))
	member, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(member.ID, member.Role, utils.AuthCacheTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, member.ID, utils.AuthCacheTTL).Err(); err != nil {
		return "", nil, fmt.Errorf("failed to cache session: %w", err)
	}

	logger.Info("Staff authenticated", zap.String("staffID", member.ID))
	return token, member, nil
}

// RevokeToken removes the session from the auth cache, ending it immediately.
func (s *DefaultStaffService) RevokeToken(ctx context.Context, token string) error {
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Del(ctx, cacheKey).Err()
}

// GetStaff returns a staff member by ID.
func (s *DefaultStaffService) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	return s.Repo.GetByID(ctx, id)
}
