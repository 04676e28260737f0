package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v78"

	"github.com/jakmyungso/api/internal/platform/httpx"
	"github.com/jakmyungso/api/internal/services"
)

const maxWebhookPayload = 64 * 1024

// WebhookVerifier validates a webhook payload against its signature header.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signature string) (stripe.Event, error)
}

// WebhookHandlers receives provider callbacks. Processing failures answer
// non-2xx so the provider retries delivery.
type WebhookHandlers struct {
	verifier WebhookVerifier
	payments services.PaymentService
}

// NewWebhookHandlers constructs webhook handlers.
func NewWebhookHandlers(verifier WebhookVerifier, payments services.PaymentService) *WebhookHandlers {
	return &WebhookHandlers{
		verifier: verifier,
		payments: payments,
	}
}

// Routes wires the /webhooks endpoints.
func (h *WebhookHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/stripe", h.stripeWebhook)
}

func (h *WebhookHandlers) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.verifier == nil || h.payments == nil {
		httpx.WriteError(ctx, w, httpx.NewError("webhooks_unavailable", "webhook processing unavailable", http.StatusServiceUnavailable))
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookPayload+1))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "unable to read webhook payload", http.StatusBadRequest))
		return
	}
	if int64(len(payload)) > maxWebhookPayload {
		httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "webhook payload exceeds allowed size", http.StatusRequestEntityTooLarge))
		return
	}

	event, err := h.verifier.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_signature", "webhook signature verification failed", http.StatusBadRequest))
		return
	}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "webhook payload must contain a checkout session", http.StatusBadRequest))
			return
		}
		if err := h.payments.HandleCheckoutCompleted(ctx, session.ID, session.Metadata["namingId"]); err != nil {
			h.writeWebhookError(w, r, err)
			return
		}
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{"received": true})
}

func (h *WebhookHandlers) writeWebhookError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrPaymentInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrPaymentNamingNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("naming_not_found", "naming not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("webhook_error", "failed to process webhook event", http.StatusInternalServerError))
	}
}
