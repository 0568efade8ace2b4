package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_evaluations_total",
			Help: "Total number of fit evaluations by mode and overall rating",
		},
		[]string{"mode", "overall"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fit_evaluation_duration_seconds",
			Help:    "Duration of fit evaluations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"mode"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_report_cache_lookups_total",
			Help: "Report cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	PartnerImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_partner_imports_total",
			Help: "Partner garment payload imports by outcome",
		},
		[]string{"outcome"},
	)
)

const (
	CacheHit  = "hit"
	CacheMiss = "miss"

	ImportAccepted         = "accepted"
	ImportInvalidPayload   = "invalid_payload"
	ImportInvalidSignature = "invalid_signature"
)
