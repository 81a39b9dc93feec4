package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mergington"
)

var (
	SignupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "signup", "total"),
		Help: "Signup attempts by outcome",
	}, []string{"operation", "result"})
	SignupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "signup", "duration_seconds"),
		Help:    "Duration of signup and unregister transactions in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"operation"})
	SeededActivities = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "seed", "activities_total"),
		Help: "Activities inserted by the seed utility",
	})
)
