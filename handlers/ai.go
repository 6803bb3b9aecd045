package handlers

import (
	"errors"
	"net/http"

	"konsulta/models"
	ai "konsulta/services/intelligence"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler relays a student message to the advisory chat persona. When
// the model backend is down the persona's apology text still comes back with
// a 200 so the conversation view stays usable.
func (h *HandlerBundle) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	userID := c.GetString("userID")
	reply, err := h.AISvc.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		var providerErr *ai.ProviderError
		if errors.As(err, &providerErr) && reply != "" {
			getLogger().Warn("chat provider failed, serving fallback reply",
				zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// ResetChatHandler clears the caller's stored chat history.
func (h *HandlerBundle) ResetChatHandler(c *gin.Context) {
	if err := h.AISvc.Reset(c.Request.Context(), c.GetString("userID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
