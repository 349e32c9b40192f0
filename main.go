// File: tutorly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"tutorly/config"
	"tutorly/database"
	bookingRepo "tutorly/database/repository/booking"
	reminderRepo "tutorly/database/repository/reminder"
	"tutorly/handlers"
	"tutorly/middleware"
	"tutorly/routes"
	"tutorly/services/reminder"
	"tutorly/services/session"
	"tutorly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	reminders := reminderRepo.NewMongoReminderRepo()

	// Room token issuer. A missing meeting secret is fatal here: the
	// process must not come up able to sign with an empty key.
	issuer, err := session.NewIssuer(session.IssuerConfig{
		AppID:     config.AppConfig.MeetingAppID,
		Secret:    config.AppConfig.MeetingSecret,
		Domain:    config.AppConfig.MeetingDomain,
		TokenTTL:  config.AppConfig.MeetingTokenTTL(),
		ClockSkew: config.AppConfig.MeetingClockSkew(),
	}, session.SystemClock{})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize meeting token issuer: %v", err)
	}

	accessService := &session.DefaultAccessService{
		Bookings: bookings,
		Issuer:   issuer,
		Classifier: session.Classifier{
			DefaultDuration: config.AppConfig.SessionDefaultDuration(),
		},
		Clock: session.SystemClock{},
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	reminderScheduler := &reminder.DefaultScheduler{
		Client:          reminderClient,
		Lead:            config.AppConfig.ReminderLead(),
		DefaultDuration: config.AppConfig.SessionDefaultDuration(),
	}
	reminder.InitReminderWorker(reminders)

	sessionHandler := handlers.NewSessionHandler(accessService, reminderScheduler, reminders, session.SystemClock{}, logger)

	// Register routes with the assembled handler.
	routes.RegisterRoutes(router, sessionHandler)

	utils.StartHealthMonitor(utils.HealthProbes{
		Mongo:         utils.MongoProbe(database.MongoClient),
		Cache:         utils.RedisProbe(utils.GetCacheClient()),
		Auth:          utils.RedisProbe(utils.GetAuthCacheClient()),
		ReminderQueue: utils.RedisProbe(utils.GetReminderQueueClient()),
	})

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
