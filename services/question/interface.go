package question

import (
	"context"
	"fmt"

	questionRepo "konsulta/database/repository/question"
	"konsulta/models"
	"konsulta/services/notification"
)

// ValidationError signals a malformed question rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// QuestionService manages student inquiries and lecturer answers.
type QuestionService interface {
	Ask(ctx context.Context, req models.AskQuestionRequest) (*models.Question, error)
	Answer(ctx context.Context, questionID, answerText string) (*models.Question, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Question, error)
	ListByLecturer(ctx context.Context, lecturerID string) ([]models.Question, error)
}

// DefaultQuestionService is the production implementation.
type DefaultQuestionService struct {
	Repo     questionRepo.Repository
	Notifier notification.NotificationService
}
