package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus metrics.
type Metrics struct {
	// Movement metrics
	MovementsCreated  *prometheus.CounterVec
	IdempotentReplays prometheus.Counter
	MovementDuration  prometheus.Histogram

	// Balance metrics
	BalanceQueries prometheus.Counter

	// Error metrics
	BusinessErrors *prometheus.CounterVec
	InternalErrors prometheus.Counter
}

var (
	instance *Metrics
	once     sync.Once
)

// New creates and registers the ledger metrics. Registration happens once per
// process; subsequent calls return the same instance.
func New() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			MovementsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ledger_movements_created_total",
					Help: "Total number of movements recorded",
				},
				[]string{"type"},
			),
			IdempotentReplays: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "ledger_idempotent_replays_total",
					Help: "Total number of write requests answered from the idempotency guard",
				},
			),
			MovementDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "ledger_movement_duration_seconds",
					Help:    "Movement write duration in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
				},
			),
			BalanceQueries: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "ledger_balance_queries_total",
					Help: "Total number of balance queries",
				},
			),
			BusinessErrors: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ledger_business_errors_total",
					Help: "Total number of business rule violations by kind",
				},
				[]string{"kind"},
			),
			InternalErrors: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "ledger_internal_errors_total",
					Help: "Total number of internal failures surfaced to clients",
				},
			),
		}
	})

	return instance
}
