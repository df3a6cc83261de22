package main

import (
	"log"

	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/auth"
	"github.com/rogue-drones/workflow/internal/config"
	"github.com/rogue-drones/workflow/internal/router"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := auth.Init(cfg.JWTSecret, cfg.TokenTTL); err != nil {
		log.Fatalf("Error initializing auth: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
