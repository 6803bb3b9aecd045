package handlers

import (
	slotRepoPkg "konsulta/database/repository/slot"
	userRepoPkg "konsulta/database/repository/user"
	"konsulta/services/booking"
	ai "konsulta/services/intelligence"
	"konsulta/services/notification"
	"konsulta/services/question"
	"konsulta/services/tasks"
	"konsulta/services/user"
)

// HandlerBundle groups all endpoint handlers around their shared services.
type HandlerBundle struct {
	UserSvc     user.UserService
	Engine      booking.SchedulingEngine
	QuestionSvc question.QuestionService
	NotifSvc    notification.NotificationService
	AISvc       ai.AIService
	Reminders   *tasks.ReminderScheduler

	SlotRepo slotRepoPkg.Repository
	UserRepo userRepoPkg.Repository
}
