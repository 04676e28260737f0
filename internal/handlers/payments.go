package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jakmyungso/api/internal/platform/httpx"
	"github.com/jakmyungso/api/internal/services"
)

const maxPaymentRequestBody = 8 * 1024

// PaymentHandlers exposes the in-app purchase completion endpoint and the
// Stripe checkout session flow.
type PaymentHandlers struct {
	payments   services.PaymentService
	checkoutMW func(http.Handler) http.Handler
	idemHeader string
}

// PaymentHandlersOption customises PaymentHandlers construction.
type PaymentHandlersOption func(*PaymentHandlers)

// WithCheckoutSessionMiddleware wraps the checkout session endpoint, typically
// with idempotency replay protection.
func WithCheckoutSessionMiddleware(mw func(http.Handler) http.Handler) PaymentHandlersOption {
	return func(h *PaymentHandlers) {
		h.checkoutMW = mw
	}
}

// WithIdempotencyHeader overrides the header forwarded as the checkout
// session idempotency key.
func WithIdempotencyHeader(name string) PaymentHandlersOption {
	return func(h *PaymentHandlers) {
		if name != "" {
			h.idemHeader = name
		}
	}
}

// NewPaymentHandlers constructs payment handlers.
func NewPaymentHandlers(payments services.PaymentService, opts ...PaymentHandlersOption) *PaymentHandlers {
	h := &PaymentHandlers{
		payments:   payments,
		idemHeader: "Idempotency-Key",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Routes wires the /payments endpoints.
func (h *PaymentHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/iap/complete", h.completeIAP)
	if h.checkoutMW != nil {
		r.With(h.checkoutMW).Post("/checkout/session", h.createCheckoutSession)
	} else {
		r.Post("/checkout/session", h.createCheckoutSession)
	}
	r.Post("/checkout/verify", h.verifyCheckoutSession)
}

type completeIAPRequest struct {
	NamingID string `json:"namingId"`
	OrderID  string `json:"orderId"`
	UserKey  string `json:"userKey"`
}

type completeIAPResponse struct {
	OK      bool   `json:"ok"`
	Phase   string `json:"phase"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	PaidAt  string `json:"paidAt,omitempty"`
	Mocked  bool   `json:"mocked,omitempty"`
}

type checkoutSessionRequest struct {
	NamingID string `json:"namingId"`
}

type checkoutSessionResponse struct {
	NamingID  string `json:"namingId"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type verifyCheckoutRequest struct {
	NamingID  string `json:"namingId"`
	SessionID string `json:"sessionId"`
}

type verifyCheckoutResponse struct {
	Status string `json:"status"`
}

func (h *PaymentHandlers) completeIAP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.payments == nil {
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment service unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxPaymentRequestBody)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req completeIAPRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	outcome := h.payments.VerifyAndComplete(ctx, services.VerifyOrderCommand{
		NamingID:  req.NamingID,
		OrderID:   req.OrderID,
		UserKey:   req.UserKey,
		RequestID: middleware.GetReqID(ctx),
	})

	status := outcome.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	response := completeIAPResponse{
		OK:      outcome.OK,
		Phase:   string(outcome.Phase),
		Message: outcome.Message,
		Details: outcome.Details,
		OrderID: outcome.OrderID,
		Mocked:  outcome.Mocked,
	}
	if outcome.PaidAt != nil {
		response.PaidAt = outcome.PaidAt.UTC().Format(time.RFC3339)
	}
	writeJSONResponse(w, status, response)
}

func (h *PaymentHandlers) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.payments == nil {
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment service unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxPaymentRequestBody)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req checkoutSessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	result, err := h.payments.CreateCheckoutSession(ctx, services.CheckoutSessionCommand{
		NamingID:       req.NamingID,
		IdempotencyKey: r.Header.Get(h.idemHeader),
	})
	if err != nil {
		h.writePaymentError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, checkoutSessionResponse{
		NamingID:  result.NamingID,
		SessionID: result.SessionID,
		URL:       result.SessionURL,
	})
}

func (h *PaymentHandlers) verifyCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.payments == nil {
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment service unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxPaymentRequestBody)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req verifyCheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	outcome, err := h.payments.VerifyBySession(ctx, services.VerifyBySessionCommand{
		NamingID:  req.NamingID,
		SessionID: req.SessionID,
	})
	if err != nil {
		h.writePaymentError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, verifyCheckoutResponse{Status: string(outcome.Status)})
}

func (h *PaymentHandlers) writePaymentError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPaymentInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrPaymentNamingNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("naming_not_found", "naming not found", http.StatusNotFound))
	case errors.Is(err, services.ErrPaymentNotCompleted):
		httpx.WriteError(ctx, w, httpx.NewError("payment_not_completed", "payment has not completed for this session", http.StatusPaymentRequired))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("payment_error", "failed to process payment request", http.StatusInternalServerError))
	}
}
