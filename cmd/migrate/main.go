// migrate applies every migrations/NNN_*.sql file that has not been applied
// yet, tracking versions and checksums in schema_migrations. An advisory lock
// keeps concurrent runs from interleaving.
//
// Usage: go run ./cmd/migrate
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stockpilot/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const migrationsDir = "migrations"

// Arbitrary key identifying this application's migrator to Postgres.
const advisoryLockKey = 9081257

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		log.Fatalf("Failed to acquire connection: %v", err)
	}
	defer conn.Release()

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", advisoryLockKey).Scan(&locked); err != nil {
		log.Fatalf("Failed to query advisory lock: %v", err)
	}
	if !locked {
		log.Fatal("Another migrator is currently running.")
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			checksum   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		log.Fatalf("Failed to create schema_migrations table: %v", err)
	}

	files, err := discoverMigrations()
	if err != nil {
		log.Fatalf("Failed to discover migrations: %v", err)
	}
	for _, filename := range files {
		if err := applyMigration(ctx, pool, filename); err != nil {
			log.Fatalf("Migration %s failed: %v", filename, err)
		}
	}
	log.Println("All migrations processed.")
}

// discoverMigrations lists migrations/*.sql sorted by filename, requiring the
// NNN_description.sql form and unique version prefixes.
func discoverMigrations() ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return nil, err
	}

	seen := map[string]string{}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		parts := strings.SplitN(name, "_", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid migration filename %s, expected NNN_description.sql", name)
		}
		version := parts[0]
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %s (%s and %s)", version, prev, name)
		}
		seen[version] = name
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, filename string) error {
	version := strings.SplitN(filename, "_", 2)[0]

	sqlBytes, err := os.ReadFile(filepath.Join(migrationsDir, filename))
	if err != nil {
		return err
	}
	sum := sha256.Sum256(sqlBytes)
	checksum := hex.EncodeToString(sum[:])

	var existing string
	err = pool.QueryRow(ctx,
		"SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existing)
	switch {
	case err == nil:
		if existing != checksum {
			return fmt.Errorf("checksum mismatch: applied %s, file now %s", existing, checksum)
		}
		log.Printf("skip  %s", filename)
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		// not applied yet
	default:
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version, filename, checksum) VALUES ($1, $2, $3)",
		version, filename, checksum); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Printf("apply %s", filename)
	return nil
}
