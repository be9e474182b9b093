// README: Prometheus counters for classified intents and offline cache events.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	intentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsathi_intents_total",
		Help: "Classified queries by topic intent",
	}, []string{"intent"})

	cacheEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsathi_cache_events_total",
		Help: "Offline cache events by outcome (hit, partial, miss, store, evict, corrupt)",
	}, []string{"outcome"})

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(intentsTotal, cacheEventsTotal)
	})
}

func RecordIntent(intent string) {
	intentsTotal.WithLabelValues(intent).Inc()
}

// RecordCache adds n events for an outcome.
func RecordCache(outcome string, n int) {
	if n <= 0 {
		return
	}
	cacheEventsTotal.WithLabelValues(outcome).Add(float64(n))
}
