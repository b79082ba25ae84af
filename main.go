// File: careconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect/config"
	"careconnect/cron"
	"careconnect/database"
	bookingRepoPkg "careconnect/database/repository/booking"
	resourceRepoPkg "careconnect/database/repository/resource"
	reviewRepoPkg "careconnect/database/repository/review"
	userRepoPkg "careconnect/database/repository/user"
	"careconnect/handlers"
	"careconnect/middleware"
	"careconnect/routes"
	"careconnect/services/booking"
	"careconnect/services/resource"
	"careconnect/services/review"
	"careconnect/services/tasks"
	"careconnect/services/user"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Reminder queue client and background worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	resourceService := &resource.DefaultResourceService{Repo: resourceRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Resources: resourceRepo,
		Reminders: &tasks.ReminderScheduler{Client: asynqClient, Logger: logger},
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		User:     handlers.NewUserHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Resource: handlers.NewResourceHandler(resourceService),
		Review:   handlers.NewReviewHandler(reviewService),
		Admin:    handlers.NewAdminHandler(userService, bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

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
