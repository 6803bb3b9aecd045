package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"konsulta/config"
	"konsulta/cron"
	"konsulta/database"
	notificationRepoPkg "konsulta/database/repository/notification"
	questionRepoPkg "konsulta/database/repository/question"
	slotRepoPkg "konsulta/database/repository/slot"
	userRepoPkg "konsulta/database/repository/user"
	"konsulta/handlers"
	"konsulta/middleware"
	"konsulta/routes"
	"konsulta/services/booking"
	ai "konsulta/services/intelligence"
	"konsulta/services/notification"
	"konsulta/services/question"
	"konsulta/services/tasks"
	"konsulta/services/user"
	"konsulta/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	questionRepo := questionRepoPkg.NewMongoQuestionRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create schedule indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}

	// Services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: notificationService,
		Cache:    utils.NewRedisCache(utils.GetCacheClient()),
	}
	schedulingEngine := &booking.DefaultSchedulingEngine{
		Repo: slotRepo,
	}
	questionService := &question.DefaultQuestionService{
		Repo:     questionRepo,
		Notifier: notificationService,
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiSvc := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey, ctxStore)

	reminders := tasks.NewReminderScheduler()
	defer reminders.Close()

	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserSvc:     userService,
		Engine:      schedulingEngine,
		QuestionSvc: questionService,
		NotifSvc:    notificationService,
		AISvc:       aiSvc,
		Reminders:   reminders,

		SlotRepo: slotRepo,
		UserRepo: userRepo,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
