package handlers

import (
	"net/http"

	"konsulta/models"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles account creation for students and lecturers.
func (h *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.UserSvc.Register(c.Request.Context(), req)
	if err != nil {
		getLogger().Warn("registration failed", zap.String("id", req.ID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginHandler exchanges email/password for a signed token.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.UserSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserByIDHandler returns a single profile.
func (h *HandlerBundle) GetUserByIDHandler(c *gin.Context) {
	u, err := h.UserSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListLecturersHandler returns every lecturer profile, for advisor pickers.
func (h *HandlerBundle) ListLecturersHandler(c *gin.Context) {
	lecturers, err := h.UserSvc.ListLecturers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lecturers)
}

// UpdateProfileHandler applies a partial profile update. Callers may only
// update their own profile.
func (h *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString("userID") != userID {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "cannot update another user's profile")
		return
	}

	var upd models.UserProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.UserSvc.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateInterestsHandler replaces the student's declared interests.
func (h *HandlerBundle) UpdateInterestsHandler(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString("userID") != userID {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "cannot update another user's interests")
		return
	}

	var req struct {
		Interests     []string `json:"interests"`
		OtherInterest string   `json:"otherInterest"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.UserSvc.UpdateInterests(c.Request.Context(), userID, req.Interests, req.OtherInterest)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
