package notification

import (
	"context"

	notificationRepo "konsulta/database/repository/notification"
	"konsulta/models"
)

// NotificationService creates and manages per-recipient notification
// documents. Notify is fire-and-forget: it is never transactional with the
// state change it reports, and its failures are logged and dropped.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, message string)
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, notificationID string) error
	ClearAll(ctx context.Context, recipientID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.Repository
}
