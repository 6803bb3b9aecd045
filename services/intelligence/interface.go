package ai

import (
	"context"

	"konsulta/models"
)

// ContextStore keeps the rolling chat history per user.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// AIService is the advisory chat: send a student message, receive the
// advisor persona's reply. Session state lives in the context store.
type AIService interface {
	Chat(ctx context.Context, userID, message string) (string, error)
	Reset(ctx context.Context, userID string) error
}
