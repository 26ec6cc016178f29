package calc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for evaluation observability. Labels carry the
// operation name and outcome so dashboards can separate division-by-zero
// spikes from genuine load.
var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "omnicalc_operations_total",
		Help: "Total number of evaluated operations",
	}, []string{"op", "status"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "omnicalc_operation_duration_seconds",
		Help:    "Duration of operation evaluation in seconds",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	}, []string{"op"})
)
