package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("venue-booking", reg)

	m.IncConflict("create")
	m.IncConflict("create")
	m.IncConflict("check")
	m.IncDraftCleanupFailure()
	m.IncStaleFetch()
	m.IncDepositFallback()
	m.ObserveHTTPRequest("GET", "/api/v1/venues/{venueId}/availability", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conflictsDetected.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictsDetected.WithLabelValues("check")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.draftCleanupFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleFetchesDiscarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.depositFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/venues/{venueId}/availability", "200")))
}
