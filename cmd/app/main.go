package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Bhakat-Aditya/Biswajit-Gym/docs"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/config"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/db"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/email"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/media"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/renewal"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/server"
)

// @title Biswajit Gym API
// @version 1.0
// @description API for gym membership, leads and gallery management.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting Biswajit Gym application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Connecting to database...")
	mongo, err := db.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer mongo.Close(context.Background())
	logger.Info("Database connected")

	if err := mongo.EnsureIndexes(ctx); err != nil {
		logger.Fatalf("Failed to create indexes: %v", err)
	}
	logger.Info("Indexes ensured")

	storage, err := media.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		logger.Fatalf("Failed to initialize media storage: %v", err)
	}

	emailService := email.New(
		cfg.GymName,
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()
	go emailService.Start(ctx)
	logger.Info("Email service initialized")

	srv := server.New(mongo, cfg, emailService, storage)

	if cfg.SweepSchedule != "" {
		scheduler, err := renewal.Schedule(cfg.SweepSchedule, srv.Renewal())
		if err != nil {
			logger.Fatalf("Failed to start renewal scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
