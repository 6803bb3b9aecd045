package slotRepo

import (
	"context"
	"errors"

	"konsulta/models"
)

// Sentinel errors surfaced by slot storage.
var (
	// ErrNotFound means the referenced slot does not exist.
	ErrNotFound = errors.New("schedule slot not found")
	// ErrVersionConflict means the slot's committed version moved between
	// read and write; the caller should re-read and retry.
	ErrVersionConflict = errors.New("schedule slot version conflict")
)

// Repository is keyed storage for schedule slots. ReplaceIfVersion is the
// compare-and-swap primitive the booking engine builds its optimistic
// transactions on: the write commits only if the stored version still equals
// the version the caller read.
type Repository interface {
	GetByID(ctx context.Context, slotID string) (*models.ScheduleSlot, error)
	Insert(ctx context.Context, slot *models.ScheduleSlot) error
	ReplaceIfVersion(ctx context.Context, slot *models.ScheduleSlot, expectedVersion int64) error

	ListAll(ctx context.Context) ([]models.ScheduleSlot, error)
	ListByLecturer(ctx context.Context, lecturerID string) ([]models.ScheduleSlot, error)

	// Watch delivers the full slot collection immediately and again after
	// every change, until ctx is cancelled.
	Watch(ctx context.Context) (<-chan []models.ScheduleSlot, error)
}
