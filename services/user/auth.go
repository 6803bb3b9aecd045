package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "konsulta/database/repository/user"
	"konsulta/models"
	"konsulta/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// studentEmailDomain is the institutional address every student account must
// register with.
const studentEmailDomain = "@student.unsri.ac.id"

const tokenLifetime = 24 * time.Hour

// Register validates the payload and creates the account plus its profile
// document. Students must use their institutional email address.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistrationData) (*models.User, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ValidationError{Field: "fullName", Reason: "must not be empty"}
	}
	if req.ID == "" {
		return nil, ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if len(req.Password) < 6 {
		return nil, ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	if req.Role != models.RoleStudent && req.Role != models.RoleLecturer {
		return nil, ValidationError{Field: "role", Reason: "must be student or lecturer"}
	}
	if req.Role == models.RoleStudent && !strings.HasSuffix(req.Email, studentEmailDomain) {
		return nil, ValidationError{Field: "email", Reason: "students must register with a " + studentEmailDomain + " address"}
	}

	if _, err := s.Repo.GetByID(ctx, req.ID); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if _, err := s.Repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           req.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if u.IsLecturer() {
		s.invalidateLecturerCache(ctx)
	}
	return u, nil
}

// Authenticate verifies the credentials and issues a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, User: *u}, nil
}
