package handlers

import (
	"errors"
	"net/http"

	notificationRepo "konsulta/database/repository/notification"
	questionRepo "konsulta/database/repository/question"
	slotRepo "konsulta/database/repository/slot"
	userRepo "konsulta/database/repository/user"
	"konsulta/services/booking"
	ai "konsulta/services/intelligence"
	"konsulta/services/question"
	"konsulta/services/user"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service and repository errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var bookingVal booking.ValidationError
	var questionVal question.ValidationError
	var userVal user.ValidationError
	var providerErr *ai.ProviderError

	switch {
	case errors.Is(err, slotRepo.ErrNotFound),
		errors.Is(err, questionRepo.ErrNotFound),
		errors.Is(err, notificationRepo.ErrNotFound),
		errors.Is(err, userRepo.ErrNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, booking.ErrAlreadyBooked),
		errors.Is(err, booking.ErrSlotFull),
		errors.Is(err, user.ErrDuplicateUser):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.As(err, &bookingVal),
		errors.As(err, &questionVal),
		errors.As(err, &userVal):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.As(err, &providerErr):
		utils.JSONError(c, http.StatusBadGateway, "Upstream service unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
