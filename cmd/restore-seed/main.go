// restore-seed is a one-shot tool to overwrite the persisted ledger state
// with the demo seed dataset. Run it when the saved snapshot has been
// corrupted or you want a clean demo environment.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"log"
	"os"

	"stockpilot/internal/core"
	"stockpilot/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var snap db.Snapshotter
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		defer pool.Close()
		snap = db.NewPGStore(pool)
		log.Println("Restoring seed data to PostgreSQL...")
	} else {
		path := os.Getenv("STOCKPILOT_DATA_FILE")
		if path == "" {
			path = "stockpilot.json"
		}
		snap = db.NewFileStore(path)
		log.Printf("Restoring seed data to %s...", path)
	}

	if err := snap.Save(ctx, core.SeedSnapshot()); err != nil {
		log.Fatalf("Failed to write seed snapshot: %v", err)
	}
	log.Println("Seed data restored.")
}
