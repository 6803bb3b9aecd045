package handlers

import (
	"net/http"

	"konsulta/models"
	"konsulta/services/projection"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
)

// AskQuestionHandler submits a new question addressed to the student's
// assigned advisor. The asker's identity and advisor come from the token and
// the stored profile, so the body cannot speak for another student.
func (h *HandlerBundle) AskQuestionHandler(c *gin.Context) {
	var req models.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	student, err := h.UserSvc.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	req.StudentID = student.ID
	req.StudentName = student.FullName
	req.LecturerID = student.DosenPA

	q, err := h.QuestionSvc.Ask(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// AnswerQuestionHandler records the lecturer's answer. Answering an already
// answered question overwrites the previous answer.
func (h *HandlerBundle) AnswerQuestionHandler(c *gin.Context) {
	var req struct {
		AnswerText string `json:"answerText" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	q, err := h.QuestionSvc.Answer(c.Request.Context(), c.Param("id"), req.AnswerText)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// StudentQuestionsHandler lists a student's questions, newest first.
func (h *HandlerBundle) StudentQuestionsHandler(c *gin.Context) {
	questions, err := h.QuestionSvc.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// LecturerQuestionsHandler lists the questions addressed to a lecturer,
// newest first.
func (h *HandlerBundle) LecturerQuestionsHandler(c *gin.Context) {
	questions, err := h.QuestionSvc.ListByLecturer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// RecentQuestionHandler returns the student's most recently submitted
// question, or 204 when the student has never asked one.
func (h *HandlerBundle) RecentQuestionHandler(c *gin.Context) {
	questions, err := h.QuestionSvc.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recent := projection.RecentQuestion(questions, c.Param("studentId"))
	if recent == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, recent)
}
