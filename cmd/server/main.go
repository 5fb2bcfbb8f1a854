package main

import (
	"log"

	"github.com/cardfolio/internal/config"
	"github.com/cardfolio/internal/db"
	"github.com/cardfolio/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.RootUserEmail, cfg.RootUserPassword); err != nil {
		log.Fatalf("failed to seed root user: %v", err)
	}

	r := router.Setup(db.DB, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
