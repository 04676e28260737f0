// Package payments holds the payment-provider adapters used to unlock a
// naming result: the Toss in-app purchase order-status client with its
// lenient payload classification, and the Stripe Checkout provider with
// webhook verification.
package payments

import (
	"context"
	"errors"
)

// Unlock price for a naming result in KRW.
const (
	CheckoutCurrency   = "krw"
	CheckoutUnitAmount = 990
)

const (
	checkoutProductName        = "AI작명소 — AI 작명 서비스"
	checkoutProductDescription = "사주 기반 AI 이름 추천 5개 + 한자/획수/음양오행 분석"
)

// ErrSessionNotPaid is returned when a checkout session is retrieved but
// the provider does not report it as paid.
var ErrSessionNotPaid = errors.New("payments: session not paid")

// CheckoutRequest captures the fields needed to open a checkout session
// for a naming result.
type CheckoutRequest struct {
	NamingID       string
	BaseURL        string
	IdempotencyKey string
}

// CheckoutSession is the provider session handed back to the client for
// redirection.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionStatus reports the payment state of a checkout session together
// with the naming it was opened for.
type SessionStatus struct {
	Paid     bool
	NamingID string
}

// CheckoutProvider opens hosted checkout sessions and answers whether a
// session has been paid.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (SessionStatus, error)
}

// OrderStatusClient looks up the raw status of an in-app purchase order.
type OrderStatusClient interface {
	OrderStatus(ctx context.Context, orderID string, userKey string) (OrderStatusResponse, error)
}
