package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backup operation labels
const (
	OpExport    = "export"
	OpReplace   = "replace"
	OpMerge     = "merge"
	OpScheduled = "scheduled"
)

var (
	backupOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_manager_backup_operations_total",
		Help: "Total backup operations by type and status",
	}, []string{"operation", "status"})

	backupDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resource_manager_backup_duration_seconds",
		Help:    "Time spent exporting or applying a snapshot",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"operation", "status"})

	backupRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_manager_backup_records_total",
		Help: "Records written by snapshot applies by entity and outcome",
	}, []string{"operation", "entity", "outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_manager_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resource_manager_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveBackup records the outcome and duration of one backup operation
func ObserveBackup(operation string, start time.Time, err error) {
	s := status(err)
	backupOperationsTotal.WithLabelValues(operation, s).Inc()
	backupDurationHistogram.WithLabelValues(operation, s).Observe(time.Since(start).Seconds())
}

// AddRecords counts records created or updated by an apply
func AddRecords(operation, entity, outcome string, n int) {
	if n <= 0 {
		return
	}
	backupRecordsTotal.WithLabelValues(operation, entity, outcome).Add(float64(n))
}

// ObserveHTTP records one served HTTP request
func ObserveHTTP(method, route, code string, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
