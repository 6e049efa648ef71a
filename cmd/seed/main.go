// Command seed loads the sample papers into PostgreSQL so a fresh environment
// has something to show. Safe to run repeatedly; existing papers are skipped.
package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/lib/pq"

	"paperflow/internal/paper/store"
	"paperflow/internal/platform/config"
	"paperflow/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.PostgresDSN == "" {
		log.Error("PAPERFLOW_POSTGRES_DSN is required for seeding")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Error("open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	pg := store.NewPostgres(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		log.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	created, err := store.SeedSamplePapers(ctx, pg)
	if err != nil {
		log.Error("seed papers", "error", err)
		os.Exit(1)
	}
	log.Info("seeding complete", "created", created)
}
