package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "konsulta/database/repository/user"
	"konsulta/models"
	"konsulta/services/notification"
)

// ErrInvalidCredentials is returned for a wrong email/password pair without
// revealing which part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrDuplicateUser signals that the ID or email is already registered.
var ErrDuplicateUser = errors.New("a user with this ID or email already exists")

// ValidationError signals malformed registration or profile input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthResponse carries a signed token together with the profile it belongs to.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService manages accounts and profiles.
type UserService interface {
	Register(ctx context.Context, req models.UserRegistrationData) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd models.UserProfileUpdate) (*models.User, error)
	UpdateInterests(ctx context.Context, userID string, interests []string, otherInterest string) (*models.User, error)
	ListLecturers(ctx context.Context) ([]models.User, error)
}

// Cache is a byte cache for derived reads. Get reports a miss as a nil
// slice with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DefaultUserService is the production implementation. Cache is optional; a
// nil Cache disables the lecturer-list cache.
type DefaultUserService struct {
	Repo     userRepo.Repository
	Notifier notification.NotificationService
	Cache    Cache
}
