package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/fittrack/fittrack-api/internal/api/handlers"
	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/metrics"
	"github.com/fittrack/fittrack-api/internal/middleware"
	"github.com/fittrack/fittrack-api/internal/repository"
	"github.com/fittrack/fittrack-api/internal/services"
)

type Deps struct {
	Cfg         config.Config
	Tokens      *auth.TokenManager
	Users       repository.Users
	UserSvc     *services.UserService
	ExerciseSvc *services.ExerciseService
	WorkoutSvc  *services.WorkoutService
	MeasureSvc  *services.MeasurementService
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authmw := middleware.NewAuthMiddleware(d.Tokens, d.Users)

	userH := handlers.NewUserHandler(d.UserSvc)
	exerciseH := handlers.NewExerciseHandler(d.ExerciseSvc)
	workoutH := handlers.NewWorkoutHandler(d.WorkoutSvc)
	measureH := handlers.NewMeasurementHandler(d.MeasureSvc)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userH.Register)
			r.Post("/login", userH.Login)

			r.Group(func(r chi.Router) {
				r.Use(authmw.Protect)
				r.Get("/profile", userH.GetProfile)
				r.Put("/profile", userH.UpdateProfile)
				r.Get("/stats", userH.Stats)
			})
		})

		r.Route("/exercises", func(r chi.Router) {
			// library browsing is public; mutations require auth
			r.Get("/", exerciseH.List)
			r.Get("/{id}", exerciseH.Get)

			r.Group(func(r chi.Router) {
				r.Use(authmw.Protect)
				r.Post("/", exerciseH.Create)
				r.Put("/{id}", exerciseH.Update)
				r.Delete("/{id}", exerciseH.Delete)
			})
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Use(authmw.Protect)
			r.Get("/", workoutH.List)
			r.Get("/recent", workoutH.Recent)
			r.Get("/templates", workoutH.Templates)
			r.Post("/from-template/{id}", workoutH.FromTemplate)
			r.Get("/{id}", workoutH.Get)
			r.Post("/", workoutH.Create)
			r.Put("/{id}", workoutH.Update)
			r.Delete("/{id}", workoutH.Delete)
		})

		r.Route("/measurements", func(r chi.Router) {
			r.Use(authmw.Protect)
			r.Get("/", measureH.List)
			r.Get("/stats", measureH.Stats)
			r.Get("/{id}", measureH.Get)
			r.Post("/", measureH.Create)
			r.Put("/{id}", measureH.Update)
			r.Delete("/{id}", measureH.Delete)
		})
	})

	return r
}
