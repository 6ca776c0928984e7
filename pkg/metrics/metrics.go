// Package metrics provides Prometheus metrics for the FMR tracking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FMRRequestsTotal tracks FMR record operations by outcome
	FMRRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fmr",
			Subsystem: "records",
			Name:      "operations_total",
			Help:      "Total number of FMR record operations by outcome",
		},
		[]string{"operation", "status"},
	)

	// FMRRecordsByStatus tracks the last observed status distribution from list queries
	FMRRecordsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fmr",
			Subsystem: "records",
			Name:      "by_status",
			Help:      "Number of FMR records by lifecycle status as of the last report run",
		},
		[]string{"status"},
	)

	// ReportGenerationDuration tracks report aggregation duration in seconds
	ReportGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fmr",
			Subsystem: "reports",
			Name:      "generation_duration_seconds",
			Help:      "Duration of report aggregation in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"type"},
	)

	// ExportsTotal tracks CSV exports
	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fmr",
			Subsystem: "reports",
			Name:      "exports_total",
			Help:      "Total number of CSV exports generated",
		},
	)
)
