package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Cache = (*cacheMetrics)(nil)

type cacheMetrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	size      *prometheus.GaugeVec
}

func newCacheMetrics(r *promRegistry) *cacheMetrics {
	return &cacheMetrics{
		hits:      r.counterVec("cache_hits_total", "Total number of cache hits", "type"),
		misses:    r.counterVec("cache_misses_total", "Total number of cache misses", "type"),
		evictions: r.counterVec("cache_evictions_total", "Total number of cache evictions", "type", "reason"),
		size:      r.gaugeVec("cache_size", "Current number of cached entries", "type"),
	}
}

func (m *cacheMetrics) Hit(cacheType string) {
	m.hits.WithLabelValues(cacheType).Inc()
}

func (m *cacheMetrics) Miss(cacheType string) {
	m.misses.WithLabelValues(cacheType).Inc()
}

func (m *cacheMetrics) Eviction(cacheType string, reason string) {
	m.evictions.WithLabelValues(cacheType, reason).Inc()
}

func (m *cacheMetrics) Size(cacheType string, size int) {
	m.size.WithLabelValues(cacheType).Set(float64(size))
}
