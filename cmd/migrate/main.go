package main

import (
	"log"

	"moodmovie-be/internal/config"
	"moodmovie-be/internal/model"
	"moodmovie-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if cfg.Database.Driver == "" || cfg.Database.Driver == database.DriverPostgres {
		log.Println("Step 1: Setting up extensions...")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")
	if err := db.AutoMigrate(&model.Movie{}, &model.HistoryEvent{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	if cfg.Database.Driver == "" || cfg.Database.Driver == database.DriverPostgres {
		log.Println("Step 3: Creating indexes...")
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_movies_title_lower ON movies (LOWER(title));`,
			`CREATE INDEX IF NOT EXISTS idx_history_session_recorded ON history_events (session_id, recorded_at DESC);`,
		}
		for _, sql := range indexes {
			if err := db.Exec(sql).Error; err != nil {
				log.Printf("Warn: Failed to create index: %v", err)
			}
		}
	}

	log.Println("Migration completed")
}
