package repositories

import (
	"context"
	"time"

	domain "github.com/jakmyungso/api/internal/domain"
)

// Registry exposes typed repository accessors and lifecycle hooks for dependency injection.
type Registry interface {
	Close(ctx context.Context) error

	Namings() NamingRepository
	PaymentLogs() PaymentLogRepository
	Counters() CounterRepository
	Health() HealthRepository
	UnitOfWork
}

// RepositoryError wraps low-level persistence failures with categorisation used by services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// UnitOfWork allows grouping repository operations in a transactional boundary when supported.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NamingRepository persists naming requests and their generated results.
type NamingRepository interface {
	Insert(ctx context.Context, naming domain.Naming) error
	FindByID(ctx context.Context, namingID string) (domain.Naming, error)
	FindByStripeSession(ctx context.Context, sessionID string) (domain.Naming, error)
	ListByUser(ctx context.Context, userID string, pager domain.Pagination) (domain.CursorPage[domain.Naming], error)

	// AttachStripeSession records the checkout session id on a naming so
	// webhooks can find it later.
	AttachStripeSession(ctx context.Context, namingID string, sessionID string, updatedAt time.Time) error

	// MarkPaid applies the one-way pending→paid transition inside a
	// transaction. An already-paid naming is reported via the result so
	// callers can distinguish a replay from a first completion.
	MarkPaid(ctx context.Context, namingID string, update PaidUpdate) (MarkPaidResult, error)

	UpdateGenerationStatus(ctx context.Context, namingID string, status domain.GenerationStatus, updatedAt time.Time) error

	// SaveResult stores the composed result and marks generation completed.
	SaveResult(ctx context.Context, namingID string, result domain.NamingResult, rawRef string, updatedAt time.Time) error
}

// PaidUpdate carries the fields written during the paid transition.
type PaidUpdate struct {
	OrderID         string
	StripeSessionID string
	PaidAt          time.Time
}

// MarkPaidResult reports the outcome of a MarkPaid call.
type MarkPaidResult struct {
	// AlreadyPaid is true when the naming was paid before this call; the
	// document is left untouched in that case.
	AlreadyPaid bool
	Naming      domain.Naming
}

// PaymentLogRepository stores the append-only audit trail of payment
// verification attempts.
type PaymentLogRepository interface {
	Append(ctx context.Context, entry domain.PaymentLogEntry) error
	ListByNaming(ctx context.Context, namingID string, pager domain.Pagination) (domain.CursorPage[domain.PaymentLogEntry], error)

	// FindPaidNamingIDByOrderID returns the naming id of a successful
	// verification recorded for the given order id, for replay detection.
	FindPaidNamingIDByOrderID(ctx context.Context, orderID string) (string, error)

	// LatestOrderIDByNaming returns the most recent non-empty order id
	// logged for the naming, used to recover an omitted order id.
	LatestOrderIDByNaming(ctx context.Context, namingID string) (string, error)
}

// CounterRepository provides transaction-safe counters, used for per-naming
// view counts.
type CounterRepository interface {
	Increment(ctx context.Context, counterID string, step int64) (int64, error)
	Total(ctx context.Context, counterID string) (int64, error)
}

// HealthRepository exposes status of downstream dependencies for health checks.
type HealthRepository interface {
	Collect(ctx context.Context) (domain.SystemHealthReport, error)
}
