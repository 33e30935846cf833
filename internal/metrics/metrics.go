package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equiprent_bookings_created_total",
		Help: "Total number of bookings successfully created.",
	})

	ReturnsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equiprent_returns_recorded_total",
		Help: "Total number of bookings transitioned to Returned.",
	})

	PenaltiesAssessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equiprent_penalties_assessed_total",
		Help: "Total number of late-return penalties recorded.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "equiprent_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
