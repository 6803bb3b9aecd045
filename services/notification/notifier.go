package notification

import (
	"context"
	"time"

	"konsulta/models"
	"konsulta/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify creates a notification document for the recipient. A lost
// notification is not correctness-critical, so failures are logged and
// dropped rather than surfaced to the caller.
func (s *DefaultNotificationService) Notify(ctx context.Context, recipientID, message string) {
	if recipientID == "" || message == "" {
		return
	}
	n := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Message:     message,
		Timestamp:   time.Now().UnixMilli(),
		IsRead:      false,
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		utils.GetLogger().Warn("dropping undeliverable notification",
			zap.String("recipientId", recipientID),
			zap.Error(err))
	}
}

// ListByRecipient returns the recipient's notifications, newest first.
func (s *DefaultNotificationService) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID)
}

// MarkAllRead flips the read flag on every unread notification.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.Repo.MarkAllRead(ctx, recipientID)
}

// Delete removes a single notification.
func (s *DefaultNotificationService) Delete(ctx context.Context, notificationID string) error {
	return s.Repo.Delete(ctx, notificationID)
}

// ClearAll removes every notification of the recipient.
func (s *DefaultNotificationService) ClearAll(ctx context.Context, recipientID string) error {
	return s.Repo.DeleteAll(ctx, recipientID)
}
