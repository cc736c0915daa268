// File: artigadental/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"artigadental/config"
	"artigadental/cron"
	"artigadental/database"
	postRepoPkg "artigadental/database/repository/post"
	reservationRepoPkg "artigadental/database/repository/reservation"
	"artigadental/handlers"
	"artigadental/middleware"
	"artigadental/models"
	"artigadental/routes"
	"artigadental/services/blog"
	"artigadental/services/notification"
	"artigadental/services/scheduling"
	"artigadental/utils"
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
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()

	indexCtx, cancelIdx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelIdx()
	if err := reservationRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}
	if err := postRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create post indexes: %v", err)
	}

	// services.
	schedulingEngine := &scheduling.Engine{
		Policy:    scheduling.DefaultClinicPolicy(config.AppConfig.ClinicUTCOffsetMin),
		Catalogue: models.DefaultServiceCatalogue(),
		Repo:      reservationRepo,
	}
	blogService := &blog.DefaultBlogService{Repo: postRepo}

	var notifSvc notification.NotificationService
	if mailer := notification.NewSMTPNotificationService(); mailer != nil {
		notifSvc = mailer
	}
	cron.InitMailWorker(notifSvc)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(schedulingEngine),
		Appointment:  handlers.NewAppointmentHandler(schedulingEngine),
		Blog:         handlers.NewBlogHandler(blogService),
		Admin:        handlers.NewAdminHandler(blogService, reservationRepo),
	}

	// Register routes with the assembled handler bundle.
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
