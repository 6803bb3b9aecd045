package projection

import (
	"testing"
	"time"

	"konsulta/models"
)

var today = time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

func slot(id, lecturerID, date string, bookings ...models.BookedStudent) models.ScheduleSlot {
	return models.ScheduleSlot{
		ID:             id,
		LecturerID:     lecturerID,
		Date:           date,
		Time:           "10:00",
		Capacity:       5,
		BookedStudents: bookings,
	}
}

func booked(studentID string) models.BookedStudent {
	return models.BookedStudent{StudentID: studentID, StudentName: "Student " + studentID, Status: models.BookingStatusBooked}
}

func completed(studentID string) models.BookedStudent {
	return models.BookedStudent{StudentID: studentID, StudentName: "Student " + studentID, Status: models.BookingStatusCompleted}
}

func TestUpcomingAppointments(t *testing.T) {
	slots := []models.ScheduleSlot{
		slot("past", "L1", "2026-08-30", booked("S1")),
		slot("c", "L1", "2026-09-20", booked("S1")),
		slot("done", "L1", "2026-09-03", completed("S1")),
		slot("a", "L1", "2026-09-01", booked("S1")),
		slot("other", "L1", "2026-09-02", booked("S2")),
		slot("b", "L2", "2026-09-05", booked("S1")),
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"unbounded", 0, []string{"a", "b", "c"}},
		{"summary cap of two", 2, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpcomingAppointments(slots, "S1", today, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d slots, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestUpcomingAppointmentsIncludesToday(t *testing.T) {
	slots := []models.ScheduleSlot{slot("today", "L1", "2026-09-01", booked("S1"))}
	if got := UpcomingAppointments(slots, "S1", today, 0); len(got) != 1 {
		t.Fatalf("a slot on today's date must count as upcoming, got %d", len(got))
	}
}

func TestRecentQuestion(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", StudentID: "S1", SubmissionTime: 100},
		{ID: "q3", StudentID: "S1", SubmissionTime: 300},
		{ID: "q2", StudentID: "S1", SubmissionTime: 200},
		{ID: "qx", StudentID: "S2", SubmissionTime: 999},
	}
	got := RecentQuestion(questions, "S1")
	if got == nil || got.ID != "q3" {
		t.Fatalf("expected q3, got %+v", got)
	}
	if RecentQuestion(questions, "S9") != nil {
		t.Error("expected nil for a student with no questions")
	}
}

func TestMenteeRostersDiverge(t *testing.T) {
	users := []models.User{
		{ID: "S1", Role: models.RoleStudent, DosenPA: "L1"},
		{ID: "S2", Role: models.RoleStudent, DosenPA: "L2"},
		{ID: "S3", Role: models.RoleStudent, DosenPA: "L1"},
		{ID: "L1", Role: models.RoleLecturer},
	}
	slots := []models.ScheduleSlot{
		slot("x", "L1", "2026-09-01", booked("S2")), // S2 booked L1 despite advisor L2
		slot("y", "L2", "2026-09-01", booked("S3")),
	}

	declared := DeclaredMentees(users, "L1")
	if len(declared) != 2 {
		t.Fatalf("expected 2 declared mentees, got %d", len(declared))
	}

	bookedRoster := BookedMentees(users, slots, "L1")
	if len(bookedRoster) != 1 || bookedRoster[0].ID != "S2" {
		t.Fatalf("expected booked roster [S2], got %+v", bookedRoster)
	}
}

func TestPendingBookingCount(t *testing.T) {
	slots := []models.ScheduleSlot{
		slot("a", "L1", "2026-09-01", booked("S1"), completed("S2")),
		slot("b", "L1", "2026-09-02", booked("S3")),
		slot("c", "L2", "2026-09-02", booked("S4")),
	}
	if got := PendingBookingCount(slots, "L1"); got != 2 {
		t.Fatalf("expected 2 pending bookings, got %d", got)
	}
	if got := PendingBookingCount(slots, "L9"); got != 0 {
		t.Fatalf("expected 0 for unknown lecturer, got %d", got)
	}
}

func TestLecturerScheduleSorted(t *testing.T) {
	slots := []models.ScheduleSlot{
		slot("late", "L1", "2026-09-10"),
		slot("early", "L1", "2026-09-02"),
		slot("other", "L2", "2026-09-01"),
	}
	got := LecturerSchedule(slots, "L1")
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("unexpected schedule order: %+v", got)
	}
}

func TestNewQuestionCount(t *testing.T) {
	questions := []models.Question{
		{LecturerID: "L1", Status: models.QuestionStatusNew},
		{LecturerID: "L1", Status: models.QuestionStatusAnswered},
		{LecturerID: "L1", Status: models.QuestionStatusNew},
		{LecturerID: "L2", Status: models.QuestionStatusNew},
	}
	if got := NewQuestionCount(questions, "L1"); got != 2 {
		t.Fatalf("expected 2 new questions, got %d", got)
	}
}
