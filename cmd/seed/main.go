// Command seed loads the stock exercise catalog into the database,
// replacing previously seeded entries and leaving custom ones alone.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/db"
	"github.com/fittrack/fittrack-api/internal/logger"
	"github.com/fittrack/fittrack-api/internal/repository/postgres"
	"github.com/fittrack/fittrack-api/internal/seed"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Error("migrations", "err", err)
		os.Exit(1)
	}

	repos := postgres.NewRepositories(pool)
	n, err := seed.Run(ctx, repos.Exercises)
	if err != nil {
		log.Error("seed", "err", err)
		os.Exit(1)
	}
	log.Info("seeded stock exercises", "count", n)
}
