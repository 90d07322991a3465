package main

import (
	"log"
	"os"

	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/database"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
)

func mainn() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Apply migrations from the configured directory
	if err := database.AutoMigrate(db, cfg.Database.MigrationsDir); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	os.Exit(0)
}
