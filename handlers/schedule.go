package handlers

import (
	"net/http"
	"strconv"
	"time"

	"konsulta/models"
	"konsulta/services/notification"
	"konsulta/services/projection"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListSlotsHandler returns every consultation slot, ascending by date.
func (h *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	slots, err := h.SlotRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// LecturerScheduleHandler returns one lecturer's slots.
func (h *HandlerBundle) LecturerScheduleHandler(c *gin.Context) {
	slots, err := h.SlotRepo.ListByLecturer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// AddSlotHandler creates a new consultation slot and tells the lecturer's
// advisees about it.
func (h *HandlerBundle) AddSlotHandler(c *gin.Context) {
	var req models.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	slot, err := h.Engine.AddSlot(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	advisees, err := h.UserRepo.ListAdvisees(c.Request.Context(), slot.LecturerID)
	if err != nil {
		getLogger().Warn("could not list advisees for new-slot notification",
			zap.String("lecturerID", slot.LecturerID), zap.Error(err))
	} else {
		msg := notification.NewSlotMessage(slot.Date, slot.Time)
		for _, advisee := range advisees {
			h.NotifSvc.Notify(c.Request.Context(), advisee.ID, msg)
		}
	}

	c.JSON(http.StatusCreated, slot)
}

// BookSlotHandler books the authenticated student into a slot, then notifies
// both parties and queues the consultation-day reminder.
func (h *HandlerBundle) BookSlotHandler(c *gin.Context) {
	slotID := c.Param("id")
	studentID := c.GetString("userID")

	student, err := h.UserSvc.GetByID(c.Request.Context(), studentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	slot, err := h.Engine.Book(c.Request.Context(), slotID, student.ID, student.FullName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.NotifSvc.Notify(c.Request.Context(), student.ID,
		notification.BookingConfirmedMessage(slot.Date, slot.Time))
	h.NotifSvc.Notify(c.Request.Context(), slot.LecturerID,
		notification.SlotBookedMessage(student.FullName))

	if h.Reminders != nil {
		err := h.Reminders.Schedule(models.ReminderPayload{
			StudentID: student.ID,
			Date:      slot.Date,
			Time:      slot.Time,
		})
		if err != nil {
			getLogger().Warn("could not enqueue consultation reminder",
				zap.String("studentID", student.ID),
				zap.String("slotID", slot.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, slot)
}

// CompleteBookingHandler marks a student's booking as completed.
func (h *HandlerBundle) CompleteBookingHandler(c *gin.Context) {
	slotID := c.Param("id")
	studentID := c.Param("studentId")

	slot, err := h.Engine.SetBookingStatus(c.Request.Context(), slotID, studentID, models.BookingStatusCompleted)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.NotifSvc.Notify(c.Request.Context(), studentID,
		notification.ConsultationCompletedMessage(slot.Date, slot.Time))

	c.JSON(http.StatusOK, slot)
}

// UpcomingAppointmentsHandler returns the student's booked, not yet past
// slots. An optional limit query parameter caps the result for summaries.
func (h *HandlerBundle) UpcomingAppointmentsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	slots, err := h.SlotRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	upcoming := projection.UpcomingAppointments(slots, c.Param("studentId"), time.Now(), limit)
	c.JSON(http.StatusOK, upcoming)
}

// MenteesHandler returns both mentee rosters for a lecturer: the students who
// declared the lecturer as their advisor, and the students holding bookings
// on the lecturer's slots.
func (h *HandlerBundle) MenteesHandler(c *gin.Context) {
	lecturerID := c.Param("lecturerId")

	users, err := h.UserRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	slots, err := h.SlotRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"declared": projection.DeclaredMentees(users, lecturerID),
		"booked":   projection.BookedMentees(users, slots, lecturerID),
	})
}

// PendingBookingCountHandler counts the lecturer's not yet completed bookings.
func (h *HandlerBundle) PendingBookingCountHandler(c *gin.Context) {
	slots, err := h.SlotRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending": projection.PendingBookingCount(slots, c.Param("lecturerId")),
	})
}
