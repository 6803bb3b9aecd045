package userRepo

import (
	"context"
	"errors"

	"konsulta/models"
)

// ErrNotFound means the referenced user does not exist.
var ErrNotFound = errors.New("user not found")

// Repository is keyed storage for user profile documents.
type Repository interface {
	Insert(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, userID string, fields map[string]any) error

	ListAll(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	ListAdvisees(ctx context.Context, lecturerID string) ([]models.User, error)

	// Watch delivers the full user collection immediately and again after
	// every change, until ctx is cancelled.
	Watch(ctx context.Context) (<-chan []models.User, error)
}
