package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuebook/config"
	"venuebook/database"
	bookingRepo "venuebook/database/repository/booking"
	inquiryRepo "venuebook/database/repository/inquiry"
	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/routes"
	"venuebook/services/booking"
	"venuebook/services/inquiry"
	"venuebook/services/storage"
	"venuebook/services/verification"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDB)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(shutdownCtx); err != nil {
			logger.Sugar().Errorf("main: failed to close database: %v", err)
		}
	}()

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	inquiries := inquiryRepo.NewMongoInquiryRepo(db)
	if err := bookings.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := inquiries.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create inquiry indexes: %v", err)
	}

	// Services.
	bookingService := &booking.DefaultBookingService{Repo: bookings}
	inquiryService := &inquiry.DefaultInquiryService{Repo: inquiries}

	var redisClient *redis.Client
	var verificationHandler *handlers.VerificationHandler
	redisClient, err = utils.NewRedisClient(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisOTPDB)
	if err != nil {
		logger.Sugar().Warnf("main: phone verification disabled: %v", err)
		redisClient = nil
	} else {
		verificationService := &verification.DefaultVerificationService{
			Store:  &verification.RedisCodeStore{Client: redisClient},
			Sender: &verification.LogSender{Logger: logger},
			TTL:    verification.DefaultTTL,
		}
		verificationHandler = handlers.NewVerificationHandler(verificationService, logger)
	}

	var attachmentHandler *handlers.AttachmentHandler
	storageService, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Warnf("main: attachment uploads disabled: %v", err)
	} else {
		attachmentHandler = handlers.NewAttachmentHandler(storageService, logger)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Inquiry:      handlers.NewInquiryHandler(inquiryService, logger),
		Verification: verificationHandler,
		Attachments:  attachmentHandler,
		Admin:        handlers.NewAdminHandler(logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(db.Client, redisClient)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
