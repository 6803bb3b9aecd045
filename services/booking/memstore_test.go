package booking

import (
	"context"
	"sync"

	slotRepo "konsulta/database/repository/slot"
	"konsulta/models"
)

// memSlotStore is an in-memory slotRepo.Repository with the same
// compare-and-swap commit semantics as the Mongo implementation. Reads and
// writes take the lock separately, so concurrent engine calls genuinely race
// between read and commit and exercise the retry loop.
type memSlotStore struct {
	mu      sync.Mutex
	slots   map[string]models.ScheduleSlot
	subs    map[int]chan []models.ScheduleSlot
	nextSub int

	// forcedConflicts makes the next n commits fail with a version conflict
	// regardless of the presented version.
	forcedConflicts int
}

func newMemSlotStore() *memSlotStore {
	return &memSlotStore{
		slots: make(map[string]models.ScheduleSlot),
		subs:  make(map[int]chan []models.ScheduleSlot),
	}
}

func copySlot(s models.ScheduleSlot) models.ScheduleSlot {
	s.BookedStudents = append([]models.BookedStudent(nil), s.BookedStudents...)
	return s
}

func (st *memSlotStore) GetByID(ctx context.Context, slotID string) (*models.ScheduleSlot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	out := copySlot(s)
	return &out, nil
}

func (st *memSlotStore) Insert(ctx context.Context, slot *models.ScheduleSlot) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.slots[slot.ID] = copySlot(*slot)
	st.broadcastLocked()
	return nil
}

func (st *memSlotStore) ReplaceIfVersion(ctx context.Context, slot *models.ScheduleSlot, expectedVersion int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.forcedConflicts > 0 {
		st.forcedConflicts--
		return slotRepo.ErrVersionConflict
	}
	current, ok := st.slots[slot.ID]
	if !ok || current.Version != expectedVersion {
		return slotRepo.ErrVersionConflict
	}
	committed := copySlot(*slot)
	committed.Version = expectedVersion + 1
	st.slots[slot.ID] = committed
	slot.Version = committed.Version
	st.broadcastLocked()
	return nil
}

func (st *memSlotStore) ListAll(ctx context.Context) ([]models.ScheduleSlot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshotLocked(), nil
}

func (st *memSlotStore) ListByLecturer(ctx context.Context, lecturerID string) ([]models.ScheduleSlot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	var out []models.ScheduleSlot
	for _, s := range st.slots {
		if s.LecturerID == lecturerID {
			out = append(out, copySlot(s))
		}
	}
	return out, nil
}

func (st *memSlotStore) Watch(ctx context.Context) (<-chan []models.ScheduleSlot, error) {
	out := make(chan []models.ScheduleSlot, 64)

	st.mu.Lock()
	id := st.nextSub
	st.nextSub++
	st.subs[id] = out
	out <- st.snapshotLocked()
	st.mu.Unlock()

	go func() {
		<-ctx.Done()
		st.mu.Lock()
		delete(st.subs, id)
		close(out)
		st.mu.Unlock()
	}()
	return out, nil
}

func (st *memSlotStore) snapshotLocked() []models.ScheduleSlot {
	out := make([]models.ScheduleSlot, 0, len(st.slots))
	for _, s := range st.slots {
		out = append(out, copySlot(s))
	}
	return out
}

func (st *memSlotStore) broadcastLocked() {
	snap := st.snapshotLocked()
	for _, ch := range st.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// committed returns the committed state of a slot, bypassing the engine.
func (st *memSlotStore) committed(slotID string) (models.ScheduleSlot, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.slots[slotID]
	return copySlot(s), ok
}
