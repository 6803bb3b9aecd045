package questionRepo

import (
	"context"
	"errors"

	"konsulta/models"
)

// ErrNotFound means the referenced question does not exist.
var ErrNotFound = errors.New("question not found")

// Repository is keyed storage for question documents. Question writes carry
// no cross-record invariant, so updates are plain (non-transactional).
type Repository interface {
	Insert(ctx context.Context, q *models.Question) error
	GetByID(ctx context.Context, questionID string) (*models.Question, error)
	SetAnswer(ctx context.Context, questionID, answerText string) error

	ListByStudent(ctx context.Context, studentID string) ([]models.Question, error)
	ListByLecturer(ctx context.Context, lecturerID string) ([]models.Question, error)

	// Watch delivers all questions ordered by submission time (newest first)
	// immediately and again after every change, until ctx is cancelled.
	Watch(ctx context.Context) (<-chan []models.Question, error)
}
