package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCache(t *testing.T) {
	before := testutil.ToFloat64(cacheEventsTotal.WithLabelValues("evict"))
	RecordCache("evict", 3)
	RecordCache("evict", 0)
	got := testutil.ToFloat64(cacheEventsTotal.WithLabelValues("evict"))
	if got-before != 3 {
		t.Errorf("evict delta = %v, want 3", got-before)
	}
}

func TestRecordIntent(t *testing.T) {
	before := testutil.ToFloat64(intentsTotal.WithLabelValues("weather"))
	RecordIntent("weather")
	if got := testutil.ToFloat64(intentsTotal.WithLabelValues("weather")); got-before != 1 {
		t.Errorf("weather delta = %v, want 1", got-before)
	}
}

func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()
}
