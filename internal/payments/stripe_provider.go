package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// StripeLogger defines the logging contract for Stripe provider operations.
type StripeLogger func(ctx context.Context, event string, fields map[string]any)

type stripeSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeProviderConfig configures the StripeProvider.
type StripeProviderConfig struct {
	APIKey        string
	WebhookSecret string
	Backends      *stripe.Backends
	Logger        StripeLogger
	Clock         func() time.Time
	Sessions      stripeSessionAPI
}

// StripeProvider implements CheckoutProvider using Stripe Checkout and
// verifies webhook payloads against the endpoint secret.
type StripeProvider struct {
	sessions      stripeSessionAPI
	webhookSecret string
	clock         func() time.Time
	logger        StripeLogger
}

// NewStripeProvider constructs a Stripe provider using the given configuration.
func NewStripeProvider(cfg StripeProviderConfig) (*StripeProvider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" && cfg.Sessions == nil {
		return nil, errors.New("stripe: api key is required")
	}

	sessions := cfg.Sessions
	if sessions == nil {
		sc := client.New(apiKey, cfg.Backends)
		sessions = sc.CheckoutSessions
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &StripeProvider{
		sessions:      sessions,
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		clock: func() time.Time {
			return clock().UTC()
		},
		logger: logger,
	}, nil
}

// CreateCheckoutSession opens a single-item Checkout session priced at the
// naming unlock amount, tagged with the naming id for webhook correlation.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	if p == nil {
		return CheckoutSession{}, errors.New("stripe: provider is nil")
	}
	namingID := strings.TrimSpace(req.NamingID)
	if namingID == "" {
		return CheckoutSession{}, errors.New("stripe: naming id is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(req.BaseURL), "/")
	if baseURL == "" {
		return CheckoutSession{}, errors.New("stripe: base url is required")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(fmt.Sprintf("%s/success?session_id={CHECKOUT_SESSION_ID}&naming_id=%s", baseURL, namingID)),
		CancelURL:          stripe.String(baseURL + "/checkout?cancelled=true"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(CheckoutCurrency),
					UnitAmount: stripe.Int64(CheckoutUnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(checkoutProductName),
						Description: stripe.String(checkoutProductDescription),
					},
				},
			},
		},
		Metadata: map[string]string{
			"namingId": namingID,
		},
	}
	params.Context = ctx
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}

	session, err := p.sessions.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	p.logger(ctx, "payments.stripe.session.created", map[string]any{
		"sessionId": session.ID,
		"namingId":  namingID,
	})

	return CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// RetrieveSession fetches a Checkout session and reports whether Stripe
// considers it paid.
func (p *StripeProvider) RetrieveSession(ctx context.Context, sessionID string) (SessionStatus, error) {
	if p == nil {
		return SessionStatus{}, errors.New("stripe: provider is nil")
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	session, err := p.sessions.Get(sessionID, params)
	if err != nil {
		return SessionStatus{}, fmt.Errorf("stripe: retrieve checkout session: %w", err)
	}
	return SessionStatus{
		Paid:     session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		NamingID: session.Metadata["namingId"],
	}, nil
}

// VerifyWebhook checks the signature header and decodes the event.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	if p == nil {
		return stripe.Event{}, errors.New("stripe: provider is nil")
	}
	if p.webhookSecret == "" {
		return stripe.Event{}, errors.New("stripe: webhook secret is not configured")
	}
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("stripe: verify webhook signature: %w", err)
	}
	return event, nil
}
