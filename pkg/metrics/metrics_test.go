package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCalculation(t *testing.T) {
	m := New("cospharm")

	m.ObserveCalculation(OutcomeSuccess, 0.01)
	m.ObserveCalculation(OutcomeSuccess, 0.02)
	m.ObserveCalculation(OutcomeAuditFailed, 0.03)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues(OutcomeAuditFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditWriteFailures))
}

func TestObserveBulkRows(t *testing.T) {
	m := New("cospharm")

	m.ObserveBulkRows(3, 1)
	m.ObserveBulkRows(2, 0)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.BulkUploadRows.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BulkUploadRows.WithLabelValues("failed")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation(OutcomeSuccess, 0.1)
		m.ObserveBulkRows(1, 1)
	})
}

func TestHandler(t *testing.T) {
	m := New("cospharm")
	m.ObserveCalculation(OutcomeNotFound, 0.001)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `cospharm_price_calculations_total{outcome="not_found"} 1`)
}
