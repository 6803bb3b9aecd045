package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	slotRepo "konsulta/database/repository/slot"
	"konsulta/models"
	"konsulta/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxCommitAttempts bounds the optimistic retry loop. Contention on a single
// slot is a handful of students at most, so hitting the cap means the store
// is misbehaving, not the callers.
const maxCommitAttempts = 16

// Book appends a booking for the student as a single optimistic transaction:
// read the committed slot, re-evaluate both checks, and commit conditioned on
// the version read. A conflicting concurrent commit restarts the whole
// read-check-append cycle, so both checks always hold against the state that
// actually commits. Business failures are never retried.
func (se *DefaultSchedulingEngine) Book(ctx context.Context, slotID, studentID, studentName string) (*models.ScheduleSlot, error) {
	if studentID == "" {
		return nil, ValidationError{Field: "studentId", Reason: "must not be empty"}
	}

	logger := utils.GetLogger()
	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		slot, err := se.Repo.GetByID(ctx, slotID)
		if err != nil {
			return nil, err
		}

		if slot.BookingFor(studentID) >= 0 {
			return nil, ErrAlreadyBooked
		}
		if slot.IsFull() {
			return nil, ErrSlotFull
		}

		slot.BookedStudents = append(slot.BookedStudents, models.BookedStudent{
			StudentID:   studentID,
			StudentName: studentName,
			Status:      models.BookingStatusBooked,
		})

		err = se.Repo.ReplaceIfVersion(ctx, slot, slot.Version)
		if err == nil {
			return slot, nil
		}
		if !errors.Is(err, slotRepo.ErrVersionConflict) {
			return nil, fmt.Errorf("booking commit failed for slot %s: %w", slotID, err)
		}
		logger.Debug("booking conflict, retrying",
			zap.String("slotId", slotID),
			zap.String("studentId", studentID),
			zap.Int("attempt", attempt))
	}
	return nil, fmt.Errorf("booking for slot %s did not commit after %d attempts: %w",
		slotID, maxCommitAttempts, slotRepo.ErrVersionConflict)
}

// SetBookingStatus rewrites the status of the student's booking within the
// slot. Only the booked -> completed transition is exposed; re-applying
// completed is idempotent and must not error. A missing booking is reported,
// never created.
func (se *DefaultSchedulingEngine) SetBookingStatus(ctx context.Context, slotID, studentID, status string) (*models.ScheduleSlot, error) {
	if status != models.BookingStatusCompleted {
		return nil, ValidationError{Field: "status", Reason: "only the completed status can be set"}
	}

	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		slot, err := se.Repo.GetByID(ctx, slotID)
		if err != nil {
			return nil, err
		}

		idx := slot.BookingFor(studentID)
		if idx < 0 {
			return nil, ErrBookingNotFound
		}
		if slot.BookedStudents[idx].Status == status {
			// Already completed; same final state either way.
			return slot, nil
		}
		slot.BookedStudents[idx].Status = status

		err = se.Repo.ReplaceIfVersion(ctx, slot, slot.Version)
		if err == nil {
			return slot, nil
		}
		if !errors.Is(err, slotRepo.ErrVersionConflict) {
			return nil, fmt.Errorf("status commit failed for slot %s: %w", slotID, err)
		}
	}
	return nil, fmt.Errorf("status update for slot %s did not commit after %d attempts: %w",
		slotID, maxCommitAttempts, slotRepo.ErrVersionConflict)
}

// AddSlot creates a new slot with an empty booking list. There is no
// cross-slot invariant, so creation is a plain insert. Date and time are
// caller-validated beyond being present; a lecturer may legitimately backfill
// past dates.
func (se *DefaultSchedulingEngine) AddSlot(ctx context.Context, req models.AddSlotRequest) (*models.ScheduleSlot, error) {
	if req.LecturerID == "" {
		return nil, ValidationError{Field: "lecturerId", Reason: "must not be empty"}
	}
	if req.Date == "" || req.Time == "" {
		return nil, ValidationError{Field: "date/time", Reason: "must not be empty"}
	}
	if req.Capacity < 1 {
		return nil, ValidationError{Field: "capacity", Reason: "must be at least 1"}
	}

	slot := &models.ScheduleSlot{
		ID:             uuid.New().String(),
		LecturerID:     req.LecturerID,
		Date:           req.Date,
		Time:           req.Time,
		Capacity:       req.Capacity,
		BookedStudents: []models.BookedStudent{},
		Version:        0,
		CreatedAt:      time.Now(),
	}
	if err := se.Repo.Insert(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}
	return slot, nil
}
