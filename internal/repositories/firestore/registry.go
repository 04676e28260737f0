package firestore

import (
	"context"
	"errors"
	"fmt"

	cloudfirestore "cloud.google.com/go/firestore"

	pfirestore "github.com/jakmyungso/api/internal/platform/firestore"
	"github.com/jakmyungso/api/internal/repositories"
)

// Registry assembles the Firestore-backed repositories behind the
// repositories.Registry contract.
type Registry struct {
	provider *pfirestore.Provider

	namings     *NamingRepository
	paymentLogs *PaymentLogRepository
	counters    *CounterRepository
	health      repositories.HealthRepository
}

// RegistryOption customises Registry construction.
type RegistryOption func(*Registry)

// WithHealthRepository attaches the dependency health prober exposed via Health().
func WithHealthRepository(health repositories.HealthRepository) RegistryOption {
	return func(r *Registry) {
		r.health = health
	}
}

// NewRegistry constructs the repository registry on top of a shared provider.
func NewRegistry(provider *pfirestore.Provider, opts ...RegistryOption) (*Registry, error) {
	if provider == nil {
		return nil, errors.New("firestore: provider is required")
	}

	namings, err := NewNamingRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore: build naming repository: %w", err)
	}
	paymentLogs, err := NewPaymentLogRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore: build payment log repository: %w", err)
	}
	counters, err := NewCounterRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("firestore: build counter repository: %w", err)
	}

	registry := &Registry{
		provider:    provider,
		namings:     namings,
		paymentLogs: paymentLogs,
		counters:    counters,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(registry)
		}
	}
	return registry, nil
}

// Close releases the underlying Firestore client.
func (r *Registry) Close(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Close(ctx)
}

// Namings returns the naming repository.
func (r *Registry) Namings() repositories.NamingRepository {
	if r == nil {
		return nil
	}
	return r.namings
}

// PaymentLogs returns the payment log repository.
func (r *Registry) PaymentLogs() repositories.PaymentLogRepository {
	if r == nil {
		return nil
	}
	return r.paymentLogs
}

// Counters returns the counter repository.
func (r *Registry) Counters() repositories.CounterRepository {
	if r == nil {
		return nil
	}
	return r.counters
}

// Health returns the dependency health repository when configured.
func (r *Registry) Health() repositories.HealthRepository {
	if r == nil {
		return nil
	}
	return r.health
}

// RunInTx executes fn inside a Firestore transaction.
func (r *Registry) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if r == nil || r.provider == nil {
		return errors.New("firestore: registry not initialised")
	}
	if fn == nil {
		return errors.New("firestore: transaction function is required")
	}
	return r.provider.RunTransaction(ctx, func(txCtx context.Context, _ *cloudfirestore.Transaction) error {
		return fn(txCtx)
	})
}

var _ repositories.Registry = (*Registry)(nil)
