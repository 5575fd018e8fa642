package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ChecksTotal       prometheus.Counter
	CheckFailures     prometheus.Counter
	MatchedPerCheck   prometheus.Histogram
	RegulationsSeeded prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the given registerer.
// Tests pass a fresh registry to avoid duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "compliscan_checks_total",
			Help: "Total number of compliance checks performed",
		}),
		CheckFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "compliscan_check_failures_total",
			Help: "Total number of compliance checks that failed with an error",
		}),
		MatchedPerCheck: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliscan_matched_regulations_per_check",
			Help:    "Number of regulations matched per compliance check",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		RegulationsSeeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "compliscan_regulations_seeded_total",
			Help: "Total number of regulation records inserted by seed operations",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "compliscan_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}
