// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	bookingRepoPkg "medibook/database/repository/booking"
	catalogRepoPkg "medibook/database/repository/catalog"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/catalog"
	"medibook/services/notification"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	usrRepo := userRepoPkg.NewMongoUserRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	workflowStore := booking.NewWorkflowStore(utils.GetWorkflowCacheClient())

	userService := &user.DefaultUserService{
		Repo:      usrRepo,
		Workflows: workflowStore,
	}
	handlers.SetUserService(userService)

	catalogService := &catalog.DefaultCatalogService{
		Repo:        catRepo,
		CacheClient: utils.GetCacheClient(),
	}
	if err := catalogService.EnsureSeeded(); err != nil {
		logger.Sugar().Warnf("main: failed to seed catalog: %v", err)
	}

	confirmationQueue := notification.NewAsynqConfirmationQueue()

	bookingService := &booking.DefaultBookingWorkflowService{
		Repo:     bkRepo,
		Catalog:  catalogService,
		Store:    workflowStore,
		Auth:     userService,
		Notifier: confirmationQueue,
		Logger:   logger,
	}

	notificationService, err := notification.NewDefaultNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitConfirmationWorker(notificationService)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,

		// User endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler,
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler,
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler,
		UpdateFCMTokenHandler:      handlers.UpdateFCMTokenHandler,

		// Catalog endpoints.
		ListTestsHandler: catalogHandler.ListTestsHandler,
		GetTestHandler:   catalogHandler.GetTestHandler,

		// Booking workflow endpoints.
		StartWorkflow:  bookingHandler.StartWorkflow,
		SubmitBooking:  bookingHandler.SubmitBooking,
		CancelWorkflow: bookingHandler.CancelWorkflow,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetWorkflowCacheClient()},
		database.MongoClient,
	)

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
