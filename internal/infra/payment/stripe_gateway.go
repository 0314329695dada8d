// Package payment confirms checkout sessions with Stripe.
package payment

import (
	"context"
	"net/http"
	"strings"

	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

var ErrGatewayDisabled = errs.New("payment gateway is not configured")

// StripeGateway reads checkout sessions through stripe-go. The backend URL comes
// from config so a local stand-in can replace api.stripe.com.
type StripeGateway struct {
	sessions *session.Client
}

// NewGateway returns a disabled gateway when no URL is configured, so pay-later checkout keeps working.
func NewGateway(cfg config.PaymentConfig) commands.PaymentGateway {
	if strings.TrimSpace(cfg.GatewayURL) == "" {
		return DisabledGateway{}
	}
	return NewStripeGateway(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewStripeGateway(cfg config.PaymentConfig, client *http.Client) *StripeGateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:        stripe.String(strings.TrimRight(cfg.GatewayURL, "/")),
		HTTPClient: client,
		// checkout retries the whole request; the SDK must not retry underneath it
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})
	return &StripeGateway{
		sessions: &session.Client{B: backend, Key: cfg.APIKey},
	}
}

func (g *StripeGateway) ConfirmPayment(ctx context.Context, sessionToken string) (*commands.PaymentConfirmation, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionToken, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errs.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, errs.Wrapf(commands.ErrPaymentNotConfirmed, "payment session %q not found", sessionToken)
		}
		return nil, errs.Wrap(err, "fetch payment session")
	}

	reference := s.ID
	if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
		reference = s.PaymentIntent.ID
	}
	return &commands.PaymentConfirmation{
		Paid:        s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Reference:   reference,
		AmountTotal: s.AmountTotal,
	}, nil
}

type DisabledGateway struct{}

func (DisabledGateway) ConfirmPayment(context.Context, string) (*commands.PaymentConfirmation, error) {
	return nil, ErrGatewayDisabled
}
