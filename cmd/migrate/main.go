// Command migrate applies the database schema explicitly.
//
// Connect skips AutoMigrate in production; this command is the
// deliberate way to apply schema changes there.
package main

import (
	"log"

	"mediconnect/internal/config"
	"mediconnect/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema migration complete")
}
