package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"stockpilot/internal/adapters/cli"
	"stockpilot/internal/adapters/repl"
	"stockpilot/internal/app"
	"stockpilot/internal/core"
	"stockpilot/internal/db"

	"github.com/joho/godotenv"
)

const defaultDataFile = "stockpilot.json"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	snap := newSnapshotter(ctx)

	store, err := loadStore(ctx, snap)
	if err != nil {
		log.Fatalf("Failed to load ledger state: %v", err)
	}

	svc := app.NewAppService(store, snap)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}

// newSnapshotter picks the persistence backend: PostgreSQL when DATABASE_URL
// is set, a local JSON file otherwise.
func newSnapshotter(ctx context.Context) db.Snapshotter {
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		return db.NewPGStore(pool)
	}

	path := os.Getenv("STOCKPILOT_DATA_FILE")
	if path == "" {
		path = defaultDataFile
	}
	return db.NewFileStore(path)
}

// loadStore restores the last snapshot, falling back to the demo seed on
// first run.
func loadStore(ctx context.Context, snap db.Snapshotter) (*core.Store, error) {
	saved, err := snap.Load(ctx)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		log.Println("No saved state found — starting from seed data.")
		saved = core.SeedSnapshot()
	}
	return core.NewStoreFromSnapshot(saved), nil
}
