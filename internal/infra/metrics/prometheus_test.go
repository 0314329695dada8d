//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vinyl-record-house/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.ObserveCheckout("paid", "success")
	m.ObserveCheckout("paid", "success")
	m.ObserveCheckout("pay_later", "empty_cart")
	m.ObserveCancellation("rejected")

	count, err := testutil.GatherAndCount(m.Registry(), "vinyl_checkout_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per label set")

	count, err = testutil.GatherAndCount(m.Registry(), "vinyl_order_cancellations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/records/:id", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vinyl_http_requests_total{method="GET",route="/api/records/:id",status="200"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.ObserveCheckout("paid", "success")

	count, err := testutil.GatherAndCount(b.Registry(), "vinyl_checkout_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
