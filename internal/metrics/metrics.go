package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total successful user registrations",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // success|failure
	)
	WorkoutsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "workouts_created_total",
			Help: "Total workouts created, template clones included",
		},
	)
	MeasurementsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "measurements_created_total",
			Help: "Total measurements recorded",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(WorkoutsCreatedTotal)
	prometheus.MustRegister(MeasurementsCreatedTotal)
}
