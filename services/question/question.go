package question

import (
	"context"
	"fmt"
	"strings"
	"time"

	"konsulta/models"
	"konsulta/services/notification"

	"github.com/google/uuid"
)

// Ask validates and stores a new question, then notifies both parties.
// Questions can only be addressed to the student's assigned advisor, so a
// missing lecturer reference is a validation failure, not a lookup problem.
func (s *DefaultQuestionService) Ask(ctx context.Context, req models.AskQuestionRequest) (*models.Question, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.QuestionText) == "" {
		return nil, ValidationError{Field: "title/questionText", Reason: "must not be empty"}
	}
	if req.LecturerID == "" {
		return nil, ValidationError{Field: "lecturerId", Reason: "student has no assigned advisor"}
	}
	if req.Attachment != nil && req.Attachment.Size > models.MaxAttachmentSize {
		return nil, ValidationError{Field: "attachment", Reason: "must not exceed 5MB"}
	}

	q := &models.Question{
		ID:             uuid.New().String(),
		StudentID:      req.StudentID,
		StudentName:    req.StudentName,
		LecturerID:     req.LecturerID,
		Title:          req.Title,
		QuestionText:   req.QuestionText,
		Status:         models.QuestionStatusNew,
		SubmissionTime: time.Now().UnixMilli(),
		Attachment:     req.Attachment,
	}
	if err := s.Repo.Insert(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to submit question: %w", err)
	}

	s.Notifier.Notify(ctx, q.StudentID, notification.QuestionSentMessage(q.Title))
	s.Notifier.Notify(ctx, q.LecturerID, notification.NewQuestionMessage(q.StudentName))
	return q, nil
}

// Answer records the lecturer's answer and flips the question to answered,
// then notifies the student. Answering again overwrites the previous text;
// the status never reverts to new.
func (s *DefaultQuestionService) Answer(ctx context.Context, questionID, answerText string) (*models.Question, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, ValidationError{Field: "answerText", Reason: "must not be empty"}
	}

	q, err := s.Repo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetAnswer(ctx, questionID, answerText); err != nil {
		return nil, err
	}
	q.AnswerText = answerText
	q.Status = models.QuestionStatusAnswered

	s.Notifier.Notify(ctx, q.StudentID, notification.QuestionAnsweredMessage(q.Title))
	return q, nil
}

// ListByStudent returns a student's questions, newest first.
func (s *DefaultQuestionService) ListByStudent(ctx context.Context, studentID string) ([]models.Question, error) {
	return s.Repo.ListByStudent(ctx, studentID)
}

// ListByLecturer returns the questions addressed to a lecturer, newest first.
func (s *DefaultQuestionService) ListByLecturer(ctx context.Context, lecturerID string) ([]models.Question, error) {
	return s.Repo.ListByLecturer(ctx, lecturerID)
}
