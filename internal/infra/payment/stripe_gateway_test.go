//go:build unit

package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vinyl-record-house/internal/infra/payment"
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *payment.StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.PaymentConfig{GatewayURL: srv.URL + "/", APIKey: "sk_test", Timeout: time.Second}
	return payment.NewStripeGateway(cfg, srv.Client())
}

func writeStripeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"` + code + `","message":"` + code + `"}}`))
}

func TestStripeGateway_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: paid session with payment intent", func(t *testing.T) {
		gw := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions/cs_123", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_123","payment_status":"paid","amount_total":45000,"payment_intent":"pi_9"}`))
		})

		got, err := gw.ConfirmPayment(ctx, "cs_123")
		require.NoError(t, err)
		assert.Equal(t, &commands.PaymentConfirmation{Paid: true, Reference: "pi_9", AmountTotal: 45000}, got)
	})

	t.Run("success: session id is the reference when no intent is reported", func(t *testing.T) {
		gw := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"cs_456","payment_status":"unpaid","amount_total":1000}`))
		})

		got, err := gw.ConfirmPayment(ctx, "cs_456")
		require.NoError(t, err)
		assert.False(t, got.Paid)
		assert.Equal(t, "cs_456", got.Reference)
	})

	t.Run("error: unknown session is not confirmed", func(t *testing.T) {
		gw := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			writeStripeError(w, http.StatusNotFound, "resource_missing")
		})

		_, err := gw.ConfirmPayment(ctx, "cs_missing")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrPaymentNotConfirmed))
	})

	t.Run("error: provider failure", func(t *testing.T) {
		gw := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			writeStripeError(w, http.StatusBadGateway, "api_error")
		})

		_, err := gw.ConfirmPayment(ctx, "cs_123")
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrPaymentNotConfirmed))
	})

	t.Run("error: undecodable body", func(t *testing.T) {
		gw := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := gw.ConfirmPayment(ctx, "cs_123")
		require.Error(t, err)
	})
}

func TestNewGateway_DisabledWithoutURL(t *testing.T) {
	gw := payment.NewGateway(config.PaymentConfig{})

	_, err := gw.ConfirmPayment(context.Background(), "cs_123")
	require.Error(t, err)
	assert.True(t, errs.Is(err, payment.ErrGatewayDisabled))
}
