package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/auth"
	"github.com/suhrawardy-med/lifeline/internal/config"
	"github.com/suhrawardy-med/lifeline/internal/handlers"
	"github.com/suhrawardy-med/lifeline/internal/mailer"
	"github.com/suhrawardy-med/lifeline/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	handlers.Init(cfg, mailer.New(cfg))

	r := router.NewRouter(cfg.MediaRoot)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
