// main.go
package main

import (
	"log"
	"time"

	"goldentouch-booking/cmd"
	"goldentouch-booking/internal/data/repository"
	"goldentouch-booking/internal/usecase"
	"goldentouch-booking/internal/wire"
	"goldentouch-booking/pkg/database"
	"goldentouch-booking/pkg/mailer"
	"goldentouch-booking/pkg/scheduler"
	"goldentouch-booking/pkg/security"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Request guard and admin sessions
	guard := security.NewGuard(security.GuardConfig{
		RateLimitRequests: config.Security.RateLimitRequests,
		RateLimitWindow:   time.Duration(config.Security.RateLimitWindowSecs) * time.Second,
		MaxLoginAttempts:  config.Security.MaxLoginAttempts,
		LoginWindow:       time.Duration(config.Security.LoginWindowSecs) * time.Second,
		BlockDuration:     time.Duration(config.Security.BlockDurationSecs) * time.Second,
	}, logger)

	sessions := security.NewSessionStore(
		time.Duration(config.Admin.SessionTimeoutSecs)*time.Second, logger)

	// Outbound email and campaign scheduler
	mail := mailer.New(config.Email, logger)
	sched := scheduler.New(logger)

	// Wire all dependencies
	service := usecase.NewService(repos, config, guard, sessions, mail, sched, logger)
	app := wire.Wiring(service, guard, logger)

	// Weekly campaign triggers
	if err := service.Campaign.StartScheduler(); err != nil {
		logger.Fatal("Failed to start campaign scheduler", zap.Error(err))
	}

	// Periodic sweep of expired admin sessions
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessions.CleanExpired(); n > 0 {
				logger.Info("Expired sessions removed", zap.Int("count", n))
			}
		}
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
