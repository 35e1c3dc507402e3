package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsAdded   prometheus.Counter
	TransactionsDeleted prometheus.Counter
	TransactionAmount   prometheus.Histogram

	// Cloud store metrics
	StoreWrites       *prometheus.CounterVec
	StoreWriteErrors  *prometheus.CounterVec
	StoreLoadDuration prometheus.Histogram

	// Bot notification metrics
	BotNotifications *prometheus.CounterVec
	BotErrors        prometheus.Counter

	// Export metrics
	ExportsRequested *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hamyon_transactions_added_total",
			Help: "Total number of transactions recorded",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hamyon_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hamyon_transaction_amount",
			Help:    "Absolute transaction amounts",
			Buckets: []float64{1000, 10000, 50000, 100000, 500000, 1000000, 10000000},
		}),

		StoreWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamyon_store_writes_total",
				Help: "Total cloud store writes by key",
			},
			[]string{"key"},
		),
		StoreWriteErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamyon_store_write_errors_total",
				Help: "Total dropped cloud store writes by key",
			},
			[]string{"key"},
		),
		StoreLoadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hamyon_store_load_duration_seconds",
			Help:    "Duration of the initial cloud store load",
			Buckets: prometheus.DefBuckets,
		}),

		BotNotifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamyon_bot_notifications_total",
				Help: "Total bot notifications by action",
			},
			[]string{"action"},
		),
		BotErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hamyon_bot_notification_errors_total",
			Help: "Total dropped bot notifications",
		}),

		ExportsRequested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamyon_exports_requested_total",
				Help: "Total export requests by format",
			},
			[]string{"format"},
		),
	}
}
