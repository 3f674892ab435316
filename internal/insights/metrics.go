package insights

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Selection kinds used as metric labels.
const (
	kindQuote           = "quote"
	kindRecentQuotes    = "recent_quotes"
	kindRecommendations = "recommendations"
)

var (
	// SelectionsTotal counts successful selections by kind.
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_insights_selections_total",
			Help: "Total number of daily content selections served",
		},
		[]string{"kind"},
	)

	// SelectionErrorsTotal counts rejected selections by kind and reason.
	SelectionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_insights_selection_errors_total",
			Help: "Total number of daily content selections rejected",
		},
		[]string{"kind", "reason"},
	)

	// PoolSize tracks the candidate pool size seen by the last selection per category.
	PoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vendor_insights_pool_size",
			Help: "Candidate pool size of the most recent selection per category",
		},
		[]string{"category"},
	)
)

func recordSelection(kind string) {
	SelectionsTotal.WithLabelValues(kind).Inc()
}

func recordError(kind, reason string) {
	SelectionErrorsTotal.WithLabelValues(kind, reason).Inc()
}
