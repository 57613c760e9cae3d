package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordRequestAndError(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/jobs", "GET", 200, 15*time.Millisecond)
	m.RecordRequest("/jobs", "GET", 200, 5*time.Millisecond)
	m.RecordError("/companies", "POST", "FORBIDDEN")

	require.Equal(t, 2.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/jobs", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errorTotal.WithLabelValues("POST", "/companies", "FORBIDDEN")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "NOT_FOUND")
	})
}
