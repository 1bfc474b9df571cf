package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/saswattulo/Note-App-VueJs/db"
	"github.com/saswattulo/Note-App-VueJs/internal/config"
	"github.com/saswattulo/Note-App-VueJs/internal/handlers"
	"github.com/saswattulo/Note-App-VueJs/internal/router"
	"github.com/saswattulo/Note-App-VueJs/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	if err := db.EnsureDatabase(cfg.Database); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	gdb, err := db.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	h := handlers.New(store.New(gdb), cfg)
	r := router.New(h, cfg.Server.AllowedOrigins)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
