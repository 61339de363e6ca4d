package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fittrack/fittrack-api/internal/api"
	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/db"
	"github.com/fittrack/fittrack-api/internal/logger"
	"github.com/fittrack/fittrack-api/internal/metrics"
	"github.com/fittrack/fittrack-api/internal/repository/postgres"
	"github.com/fittrack/fittrack-api/internal/seed"
	"github.com/fittrack/fittrack-api/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)

	if os.Getenv("APP_SEED") == "true" {
		n, err := seed.Run(ctx, repos.Exercises)
		if err != nil {
			log.Error("seed", "err", err)
			os.Exit(1)
		}
		log.Info("seeded stock exercises", "count", n)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpire)

	userSvc := services.NewUserService(repos.Users, repos.Workouts, tokens)
	exerciseSvc := services.NewExerciseService(repos.Exercises)
	workoutSvc := services.NewWorkoutService(repos.Workouts)
	measureSvc := services.NewMeasurementService(repos.Measurements)

	metrics.Init()
	r := api.NewRouter(api.Deps{
		Cfg:         cfg,
		Tokens:      tokens,
		Users:       repos.Users,
		UserSvc:     userSvc,
		ExerciseSvc: exerciseSvc,
		WorkoutSvc:  workoutSvc,
		MeasureSvc:  measureSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
