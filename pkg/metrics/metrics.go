package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets sized for a pipeline whose slowest operation
	// is a single outbound mail-relay call (milliseconds to tens of seconds)
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Mail Relay Client Metrics
	MailRelayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_client_operation_duration_seconds",
			Help:    "Mail relay client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	MailRelayTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_client_operation_total",
			Help: "Total number of mail relay client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	InquirySubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medibridge_inquiry_submissions_total",
			Help: "Total number of inquiry form submissions",
		},
		[]string{"status"}, // accepted, spam_suppressed, validation_failed, relay_error, error
	)

	LocaleResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medibridge_locale_resolutions_total",
			Help: "Total number of locale dictionary resolutions",
		},
		[]string{"language", "outcome"}, // outcome: exact, base, fallback
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
