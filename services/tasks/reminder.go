package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"konsulta/config"
	"konsulta/models"

	"github.com/hibiken/asynq"
)

const TypeConsultationReminder = "reminder:consultation"

// reminderHour is the local hour on the consultation date at which the
// reminder fires.
const reminderHour = 7

// NewConsultationReminderTask builds the queued task plus its schedule
// option. Returns a nil task when the fire time is already past, so
// same-day bookings made after the reminder hour are simply skipped.
func NewConsultationReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	day, err := time.ParseInLocation("2006-01-02", payload.Date, time.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid consultation date %q: %w", payload.Date, err)
	}
	fireAt := time.Date(day.Year(), day.Month(), day.Day(), reminderHour, 0, 0, 0, time.Local)
	if fireAt.Before(time.Now()) {
		return nil, nil, nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeConsultationReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// ReminderScheduler enqueues consultation reminders onto the Redis
// backed task queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

func (s *ReminderScheduler) Schedule(payload models.ReminderPayload) error {
	task, opts, err := NewConsultationReminderTask(payload)
	if err != nil {
		return err
	}
	if task == nil {
		return nil
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
