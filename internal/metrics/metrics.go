package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_portal_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hr_portal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_portal_cache_lookups_total",
			Help: "Cache lookups by outcome",
		},
		[]string{"cache", "outcome"},
	)

	ReviewTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_portal_review_transitions_total",
			Help: "Applicants moved into a review set",
		},
		[]string{"set"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_portal_notifications_total",
			Help: "Applicant notification emails by outcome",
		},
		[]string{"outcome"},
	)

	PurgedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_portal_purged_rows_total",
			Help: "Soft-deleted rows removed by the purger",
		},
		[]string{"kind"},
	)

	WSClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hr_portal_ws_clients",
			Help: "Connected websocket clients",
		},
	)
)

var dbPoolOnce sync.Once

// ObserveDBPool exports connection pool gauges read from stats at scrape
// time. Only the first call registers.
func ObserveDBPool(stats func() (acquired, idle, total int32)) {
	dbPoolOnce.Do(func() {
		gauge := func(name, help string, pick func(a, i, t int32) int32) {
			promauto.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
				return float64(pick(stats()))
			})
		}
		gauge("hr_portal_db_conns_acquired", "Database connections in use", func(a, _, _ int32) int32 { return a })
		gauge("hr_portal_db_conns_idle", "Idle database connections", func(_, i, _ int32) int32 { return i })
		gauge("hr_portal_db_conns_total", "Open database connections", func(_, _, t int32) int32 { return t })
	})
}
