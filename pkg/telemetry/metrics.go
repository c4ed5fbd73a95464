// Package telemetry holds facet's Prometheus metrics, its OpenTelemetry
// tracer, and an in-process event hub.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "facet"

var (
	metricImageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cache_hits_total",
		Help:      "Image lookups answered from the cache, including in-flight entries.",
	})
	metricImageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cache_misses_total",
		Help:      "Image lookups that started a background fetch.",
	})
	metricImageFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_fetch_failures_total",
		Help:      "Background image fetches that ended in the error state.",
	})
	metricImageFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_fetch_duration_seconds",
		Help:      "Time spent fetching one image.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
	})
	metricRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renders_total",
		Help:      "Render passes by backend.",
	}, []string{"backend"})
	metricHitTests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hit_tests_total",
		Help:      "Spatial ray hit tests by result.",
	}, []string{"result"})
)

func RecordImageCacheHit() {
	metricImageCacheHits.Inc()
}

func RecordImageCacheMiss() {
	metricImageCacheMisses.Inc()
}

// RecordImageFetch observes a finished fetch and counts it as a failure
// when ok is false.
func RecordImageFetch(elapsed time.Duration, ok bool) {
	metricImageFetchDuration.Observe(elapsed.Seconds())
	if !ok {
		metricImageFetchFailures.Inc()
	}
}

func RecordRender(backend string) {
	metricRenders.WithLabelValues(backend).Inc()
}

// RecordHitTest counts a hit test as "hit" or "miss".
func RecordHitTest(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	metricHitTests.WithLabelValues(result).Inc()
}
