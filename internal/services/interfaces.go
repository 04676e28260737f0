package services

import (
	"context"
	"time"

	domain "github.com/jakmyungso/api/internal/domain"
)

// Type aliases expose domain models to the services package without reversing dependency direction.
type (
	Pagination         = domain.Pagination
	Naming             = domain.Naming
	NamingResult       = domain.NamingResult
	NameCandidate      = domain.NameCandidate
	BirthInfo          = domain.BirthInfo
	Gender             = domain.Gender
	PaymentLogEntry    = domain.PaymentLogEntry
	PaymentPhase       = domain.PaymentPhase
	SystemHealthReport = domain.SystemHealthReport
)

// NamingService orchestrates the naming lifecycle: request intake,
// generation, gated reads, and share links.
type NamingService interface {
	Create(ctx context.Context, cmd CreateNamingCommand) (Naming, error)
	Get(ctx context.Context, query GetNamingQuery) (NamingView, error)
	ListMine(ctx context.Context, userID string, pager Pagination) (domain.CursorPage[Naming], error)
	Generate(ctx context.Context, namingID string) error
	IssueShareToken(ctx context.Context, namingID string, requesterID string) (ShareToken, error)
	ResolveShareToken(ctx context.Context, token string) (NamingView, error)
}

// CreateNamingCommand carries the validated-at-the-edge request fields.
type CreateNamingCommand struct {
	UserID   string
	LastName string
	Gender   Gender
	Birth    *BirthInfo
	Keywords string
}

// GetNamingQuery controls a gated read.
type GetNamingQuery struct {
	NamingID string
	// CountView increments the view counter as a side effect.
	CountView bool
}

// NamingView is a read model with the access gate already applied.
type NamingView struct {
	Naming    Naming
	Locked    bool
	ViewCount int64
}

// ShareToken is a short-lived token granting read access to one naming.
type ShareToken struct {
	Token     string
	ExpiresAt time.Time
}

// PaymentService reconciles payment state with the configured providers.
type PaymentService interface {
	// VerifyAndComplete runs the in-app purchase verification state
	// machine. Every branch is encoded in the outcome rather than an
	// error; the handler maps it onto an HTTP response.
	VerifyAndComplete(ctx context.Context, cmd VerifyOrderCommand) VerifyOrderOutcome

	CreateCheckoutSession(ctx context.Context, cmd CheckoutSessionCommand) (CheckoutSessionResult, error)
	HandleCheckoutCompleted(ctx context.Context, sessionID string, namingID string) error
	VerifyBySession(ctx context.Context, cmd VerifyBySessionCommand) (VerifyBySessionOutcome, error)
}

// VerifyOrderCommand is the input of the verification state machine.
type VerifyOrderCommand struct {
	NamingID  string
	OrderID   string
	UserKey   string
	RequestID string
}

// VerifyOrderOutcome reports which branch of the state machine fired.
type VerifyOrderOutcome struct {
	Phase      PaymentPhase
	HTTPStatus int
	OK         bool
	Mocked     bool
	Message    string
	Details    string
	OrderID    string
	PaidAt     *time.Time
}

// CheckoutSessionCommand opens a checkout session for an existing naming.
type CheckoutSessionCommand struct {
	NamingID       string
	IdempotencyKey string
}

// CheckoutSessionResult is returned to the web client for redirection.
type CheckoutSessionResult struct {
	NamingID   string
	SessionID  string
	SessionURL string
}

// VerifyBySessionCommand is the webhook-failure fallback verification input.
type VerifyBySessionCommand struct {
	NamingID  string
	SessionID string
}

// VerifyBySessionStatus enumerates fallback verification outcomes.
type VerifyBySessionStatus string

const (
	// VerifyBySessionCompleted indicates generation already finished.
	VerifyBySessionCompleted VerifyBySessionStatus = "already_completed"
	// VerifyBySessionGenerating indicates generation is in flight.
	VerifyBySessionGenerating VerifyBySessionStatus = "generating"
	// VerifyBySessionStarted indicates payment was confirmed and generation dispatched.
	VerifyBySessionStarted VerifyBySessionStatus = "completed"
)

// VerifyBySessionOutcome reports the fallback verification result.
type VerifyBySessionOutcome struct {
	Status VerifyBySessionStatus
}

// PaymentLogService records verification audit entries. Failures are
// logged, never bubbled, so auditing cannot break the payment flow.
type PaymentLogService interface {
	Record(ctx context.Context, record PaymentLogRecord)
	List(ctx context.Context, namingID string, pager Pagination) (domain.CursorPage[PaymentLogEntry], error)
}

// PaymentLogRecord is the write model accepted by the payment log writer.
type PaymentLogRecord struct {
	NamingID       string
	OrderID        string
	Result         domain.PaymentLogResult
	Phase          PaymentPhase
	HTTPStatus     int
	ProviderStatus string
	ProviderCode   string
	Message        string
	Details        string
	RawResponse    string
	RequestID      string
}

// GenerationDispatcher hands a naming off for asynchronous generation,
// either to Pub/Sub workers or to an in-process fallback.
type GenerationDispatcher interface {
	Dispatch(ctx context.Context, namingID string) error
}

// GenerationProvider produces the raw model response for a naming prompt.
type GenerationProvider interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// ResponseArchiver stores raw generation payloads for diagnostics.
// Implementations are best effort; an archive failure never fails a run.
type ResponseArchiver interface {
	Archive(ctx context.Context, namingID string, raw string) (ref string, err error)
}

// SystemService aggregates dependency health for readiness probes.
type SystemService interface {
	Health(ctx context.Context) (SystemHealthReport, error)
}
