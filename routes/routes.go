package routes

import (
	"net/http"
	"time"

	"konsulta/handlers"
	"konsulta/middleware"
	"konsulta/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/lecturers", hb.ListLecturersHandler)
		api.PUT("/update/:id", hb.UpdateProfileHandler)
		api.PUT("/interests/:id", hb.UpdateInterestsHandler)
	}
}

// RegisterScheduleRoutes registers the consultation slot endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListSlotsHandler)
		api.GET("/lecturer/:id", hb.LecturerScheduleHandler)
		api.GET("/upcoming/:studentId", hb.UpcomingAppointmentsHandler)
		api.GET("/mentees/:lecturerId", hb.MenteesHandler)
		api.GET("/pending/:lecturerId", hb.PendingBookingCountHandler)

		api.POST("", middleware.RequireRole(models.RoleLecturer), hb.AddSlotHandler)
		api.POST("/:id/book", middleware.RequireRole(models.RoleStudent), hb.BookSlotHandler)
		api.PUT("/:id/bookings/:studentId/complete", middleware.RequireRole(models.RoleLecturer), hb.CompleteBookingHandler)
	}
}

// RegisterQuestionRoutes registers the student-question endpoints.
func RegisterQuestionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/questions")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/student/:id", hb.StudentQuestionsHandler)
		api.GET("/lecturer/:id", hb.LecturerQuestionsHandler)
		api.GET("/recent/:studentId", hb.RecentQuestionHandler)
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.AskQuestionHandler)
		api.PUT("/:id/answer", middleware.RequireRole(models.RoleLecturer), hb.AnswerQuestionHandler)
	}
}

// RegisterNotificationRoutes registers per-recipient notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:recipientId", hb.ListNotificationsHandler)
		api.PUT("/:recipientId/read", hb.MarkNotificationsReadHandler)
		api.DELETE("/id/:id", hb.DeleteNotificationHandler)
		api.DELETE("/:recipientId", hb.ClearNotificationsHandler)
	}
}

// RegisterAIRoutes registers the advisory chat endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/chat", hb.ChatHandler)
		api.DELETE("/chat", hb.ResetChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Konsulta"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterQuestionRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
