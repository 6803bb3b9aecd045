package models

// ReminderPayload is the queued task body for a consultation reminder.
type ReminderPayload struct {
	StudentID string `json:"studentId"`
	Date      string `json:"date"` // "2006-01-02", matching ScheduleSlot.Date
	Time      string `json:"time"` // "15:04", matching ScheduleSlot.Time
}
