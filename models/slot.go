package models

import "time"

// Booking status values.
const (
	BookingStatusBooked    = "booked"
	BookingStatusCompleted = "completed"
)

// BookedStudent is one student's claim on a schedule slot. It has no
// identity outside the slot's booking list; insertion order is booking order.
type BookedStudent struct {
	StudentID   string `bson:"studentId" json:"studentId"`
	StudentName string `bson:"studentName" json:"studentName"`
	Status      string `bson:"status" json:"status"` // "booked" or "completed"
}

// ScheduleSlot is a lecturer-offered consultation window with fixed capacity.
// Version is the optimistic-concurrency token: every committed mutation of
// BookedStudents bumps it, and writers must present the version they read.
type ScheduleSlot struct {
	ID             string          `bson:"id" json:"id"`
	LecturerID     string          `bson:"lecturerId" json:"lecturerId"`
	Date           string          `bson:"date" json:"date"` // "2006-01-02"
	Time           string          `bson:"time" json:"time"` // "15:04"
	Capacity       int             `bson:"capacity" json:"capacity"`
	BookedStudents []BookedStudent `bson:"bookedStudents" json:"bookedStudents"`
	Version        int64           `bson:"version" json:"-"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}

// IsFull is a derived predicate; "full" is never stored state.
func (s *ScheduleSlot) IsFull() bool {
	return len(s.BookedStudents) >= s.Capacity
}

// BookingFor returns the index of the booking held by studentID, or -1.
func (s *ScheduleSlot) BookingFor(studentID string) int {
	for i, b := range s.BookedStudents {
		if b.StudentID == studentID {
			return i
		}
	}
	return -1
}

// AddSlotRequest is the payload for a lecturer creating a new slot.
type AddSlotRequest struct {
	LecturerID string `json:"lecturerId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required"`
}
