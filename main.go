package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"depresscare-server/internal/config"
	"depresscare-server/internal/logger"
	"depresscare-server/internal/mailer"
	"depresscare-server/internal/meeting"
	"depresscare-server/internal/models"
	"depresscare-server/internal/notify"
	"depresscare-server/internal/repository"
	"depresscare-server/internal/routes"
	"depresscare-server/internal/services/appointment"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLog := logger.New(cfg)

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Outgoing email and the best-effort notification dispatcher
	mail := mailer.New(cfg.Mailer)
	notifier := notify.New(mail, appLog)
	defer notifier.Wait()

	// Appointment lifecycle service
	appointments := appointment.New(
		repository.NewIdentityStore(db),
		repository.NewAppointmentStore(db),
		meeting.New(cfg.Booking.MeetingBaseURL),
		notify.NewAppointmentNotifier(notifier),
		time.Duration(cfg.Booking.WindowBeforeMinutes)*time.Minute,
		time.Duration(cfg.Booking.WindowAfterMinutes)*time.Minute,
	)

	// Initialize Gin router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes - passing DB, config and services to let routes.go create the handlers
	routes.SetupRoutes(router, db, cfg, appointments, notifier)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	appLog.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
