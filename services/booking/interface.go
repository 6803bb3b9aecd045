package booking

import (
	"context"

	slotRepo "konsulta/database/repository/slot"
	"konsulta/models"
)

// SchedulingEngine applies state transitions to a slot's booking list while
// preserving the capacity and uniqueness invariants under concurrent callers.
type SchedulingEngine interface {
	Book(ctx context.Context, slotID, studentID, studentName string) (*models.ScheduleSlot, error)
	SetBookingStatus(ctx context.Context, slotID, studentID, status string) (*models.ScheduleSlot, error)
	AddSlot(ctx context.Context, req models.AddSlotRequest) (*models.ScheduleSlot, error)
}

// DefaultSchedulingEngine implements SchedulingEngine over slot storage that
// offers a compare-and-swap write.
type DefaultSchedulingEngine struct {
	Repo slotRepo.Repository
}
