package backup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationExport  = "export"
	operationRestore = "restore"

	formatSQL  = "sql"
	formatJSON = "json"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	operationsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "mediavault_backup_operations_total",
			Help: "Number of backup exports and restores, by format and result.",
		},
		[]string{"operation", "format", "result"},
	)

	recordsRestoredTotal = promauto.NewCounter( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "mediavault_backup_records_restored_total",
			Help: "Number of rows inserted by committed restores.",
		},
	)

	operationDuration = promauto.NewHistogramVec( //nolint:gochecknoglobals
		prometheus.HistogramOpts{
			Name:    "mediavault_backup_duration_seconds",
			Help:    "Duration of backup exports and restores.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "format"},
	)
)

func observe(operation, format string, seconds float64, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}

	operationsTotal.WithLabelValues(operation, format, result).Inc()
	operationDuration.WithLabelValues(operation, format).Observe(seconds)
}
