package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/seasafety-api/pkg/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Movement("OUT", metrics.ResultRejected)
	m.Movement("OUT", metrics.ResultRejected)
	m.Movement("IN", metrics.ResultApplied)
	m.SnapshotWrite(metrics.ResultError)
	m.SetCritical(3)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "seasafety_movements_total", "seasafety_snapshot_writes_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "seasafety_critical_items"))
}

func TestMetrics_NilEsNoOp(t *testing.T) {
	var m *metrics.Metrics
	assert.Nil(t, metrics.New(nil))
	assert.NotPanics(t, func() {
		m.Movement("IN", metrics.ResultApplied)
		m.SnapshotWrite(metrics.ResultOK)
		m.Insight(metrics.ResultDegraded)
		m.SetCritical(1)
	})
}

func TestMetrics_HTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.HTTPRequest("POST", "/api/movements", 409, 3*time.Millisecond)
	m.HTTPRequest("POST", "/api/movements", 201, 2*time.Millisecond)
	m.HTTPRequest("GET", "/health", 200, time.Millisecond)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "seasafety_http_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "seasafety_http_request_duration_seconds"))
}
