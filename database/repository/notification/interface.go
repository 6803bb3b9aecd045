package notificationRepo

import (
	"context"
	"errors"

	"konsulta/models"
)

// ErrNotFound means the referenced notification does not exist.
var ErrNotFound = errors.New("notification not found")

// Repository is keyed storage for per-recipient notification documents.
// MarkAllRead and DeleteAll are the batched multi-document operations behind
// "mark all read" and "clear all".
type Repository interface {
	Insert(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, notificationID string) error

	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	DeleteAll(ctx context.Context, recipientID string) error

	// WatchRecipient delivers the recipient's notifications (newest first)
	// immediately and again after every change, until ctx is cancelled.
	WatchRecipient(ctx context.Context, recipientID string) (<-chan []models.Notification, error)
}
