package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger mutation metrics
	MutationsApplied *prometheus.CounterVec
	MutationErrors   *prometheus.CounterVec
	MutationDuration *prometheus.HistogramVec
	MutationAmount   prometheus.Histogram

	// Account metrics
	AccountsCreated prometheus.Counter

	// Member metrics
	MembersCreated prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates all metrics and registers them on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MutationsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubledger_mutations_applied_total",
				Help: "Total number of ledger mutations applied by type",
			},
			[]string{"type"},
		),
		MutationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubledger_mutation_errors_total",
				Help: "Total number of ledger mutation errors by type",
			},
			[]string{"type", "error"},
		),
		MutationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubledger_mutation_duration_seconds",
				Help:    "Duration of ledger mutations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		MutationAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clubledger_mutation_amount",
			Help:    "Mutation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),

		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		MembersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_members_created_total",
			Help: "Total number of members created",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubledger_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
