package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wallet_ledger",
			Name:      "operations_total",
			Help:      "Total number of ledger operations.",
		},
		[]string{"operation", "status"}, // status: "success", "rejected", "error"
	)

	ledgerOperationDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wallet_ledger",
			Name:      "operation_duration_seconds",
			Help:      "Duration of ledger operations.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
