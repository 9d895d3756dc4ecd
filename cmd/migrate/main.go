package main

import (
	"log"

	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/database"
	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	log.Println("🔄 Applying embedded migrations...")

	n, err := database.Migrate(db, cfg.Database.Driver, nil)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}
