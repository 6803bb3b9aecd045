// Package projection derives the read-only views over slot, question and
// user snapshots. Every function is pure: it is recomputed against whichever
// snapshot the live subscription last delivered and never caches anything.
package projection

import (
	"sort"
	"time"

	"konsulta/models"
)

// UpcomingAppointments returns the slots where the student holds a booking
// still in the booked status, on today or a later date, ascending by date.
// limit > 0 caps the result for summary views; limit 0 means unbounded.
func UpcomingAppointments(slots []models.ScheduleSlot, studentID string, today time.Time, limit int) []models.ScheduleSlot {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	var out []models.ScheduleSlot
	for _, slot := range slots {
		idx := slot.BookingFor(studentID)
		if idx < 0 || slot.BookedStudents[idx].Status != models.BookingStatusBooked {
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", slot.Date, today.Location())
		if err != nil || d.Before(dayStart) {
			continue
		}
		out = append(out, slot)
	}
	sortSlotsByDate(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecentQuestion returns the student's question with the latest submission
// time, or nil if the student has never asked one.
func RecentQuestion(questions []models.Question, studentID string) *models.Question {
	var recent *models.Question
	for i := range questions {
		q := &questions[i]
		if q.StudentID != studentID {
			continue
		}
		if recent == nil || q.SubmissionTime > recent.SubmissionTime {
			recent = q
		}
	}
	return recent
}

// DeclaredMentees returns the students whose declared advisor is lecturerID.
func DeclaredMentees(users []models.User, lecturerID string) []models.User {
	var out []models.User
	for _, u := range users {
		if u.IsStudent() && u.DosenPA == lecturerID {
			out = append(out, u)
		}
	}
	return out
}

// BookedMentees returns the students who appear in any booking under any of
// the lecturer's slots. This is a broader, booking-derived roster and is
// deliberately distinct from DeclaredMentees.
func BookedMentees(users []models.User, slots []models.ScheduleSlot, lecturerID string) []models.User {
	booked := make(map[string]bool)
	for _, slot := range slots {
		if slot.LecturerID != lecturerID {
			continue
		}
		for _, b := range slot.BookedStudents {
			booked[b.StudentID] = true
		}
	}

	var out []models.User
	for _, u := range users {
		if u.IsStudent() && booked[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

// PendingBookingCount counts the bookings still in the booked status across
// all of the lecturer's slots.
func PendingBookingCount(slots []models.ScheduleSlot, lecturerID string) int {
	count := 0
	for _, slot := range slots {
		if slot.LecturerID != lecturerID {
			continue
		}
		for _, b := range slot.BookedStudents {
			if b.Status == models.BookingStatusBooked {
				count++
			}
		}
	}
	return count
}

// LecturerSchedule returns the lecturer's slots ascending by date.
func LecturerSchedule(slots []models.ScheduleSlot, lecturerID string) []models.ScheduleSlot {
	var out []models.ScheduleSlot
	for _, slot := range slots {
		if slot.LecturerID == lecturerID {
			out = append(out, slot)
		}
	}
	sortSlotsByDate(out)
	return out
}

// NewQuestionCount counts the lecturer's unanswered questions.
func NewQuestionCount(questions []models.Question, lecturerID string) int {
	count := 0
	for _, q := range questions {
		if q.LecturerID == lecturerID && q.Status == models.QuestionStatusNew {
			count++
		}
	}
	return count
}

func sortSlotsByDate(slots []models.ScheduleSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
}
