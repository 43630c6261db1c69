package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ HTTP = (*httpMetrics)(nil)

type httpMetrics struct {
	requestCounter     *prometheus.CounterVec
	slowRequestCounter *prometheus.CounterVec
	durationHistogram  *prometheus.HistogramVec
}

func newHTTPMetrics(r *promRegistry) *httpMetrics {
	return &httpMetrics{
		requestCounter: r.counterVec(
			"http_requests_total",
			"Total number of HTTP requests by method, path and status class",
			"method", "path", "status",
		),
		slowRequestCounter: r.counterVec(
			"http_slow_requests_total",
			"Total number of slow HTTP requests by method, path and status class",
			"method", "path", "status",
		),
		durationHistogram: r.histogramVec(
			"http_request_duration_seconds",
			"HTTP request duration in seconds",
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			"method", "path", "status",
		),
	}
}

func (m *httpMetrics) Request(
	method, path string,
	status int,
	duration time.Duration,
) {
	class := StatusClass(status)
	m.requestCounter.WithLabelValues(method, path, class).Inc()
	m.durationHistogram.WithLabelValues(method, path, class).Observe(duration.Seconds())
}

func (m *httpMetrics) SlowRequest(
	method, path string,
	status int,
	_ time.Duration,
) {
	m.slowRequestCounter.WithLabelValues(method, path, StatusClass(status)).Inc()
}

// StatusClass maps 404 to "4xx".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
