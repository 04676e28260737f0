package domain

import "time"

// PaymentLogResult classifies a payment log entry.
type PaymentLogResult string

const (
	// PaymentLogSuccess marks an entry recording a successful outcome.
	PaymentLogSuccess PaymentLogResult = "success"
	// PaymentLogFailure marks an entry recording a failed outcome.
	PaymentLogFailure PaymentLogResult = "failure"
	// PaymentLogInfo marks a purely informational entry.
	PaymentLogInfo PaymentLogResult = "info"
)

// PaymentPhase tags the stage of the verification state machine that
// produced a payment log entry.
type PaymentPhase string

const (
	PhaseValidationFailed      PaymentPhase = "validation_failed"
	PhaseNamingNotFound        PaymentPhase = "naming_not_found"
	PhaseAlreadyPaid           PaymentPhase = "already_paid"
	PhaseMockPaid              PaymentPhase = "mock_paid"
	PhaseOrderIDRecovered      PaymentPhase = "order_id_recovered"
	PhaseOrderIDMissing        PaymentPhase = "order_id_missing"
	PhaseOrderIDReused         PaymentPhase = "order_id_reused"
	PhaseVerifyNetworkError    PaymentPhase = "verify_network_error"
	PhaseVerifyAPIFailed       PaymentPhase = "verify_api_failed"
	PhaseVerifyNotPaid         PaymentPhase = "verify_not_paid"
	PhaseVerifyOrderMismatch   PaymentPhase = "verify_order_mismatch"
	PhaseVerifyProductMismatch PaymentPhase = "verify_product_mismatch"
	PhaseVerifyAmountMismatch  PaymentPhase = "verify_amount_mismatch"
	PhaseVerifyFieldsPartial   PaymentPhase = "verify_fields_partial"
	PhaseVerifyPaid            PaymentPhase = "verify_paid"
	PhaseException             PaymentPhase = "exception"
)

// PaymentLogEntry is one append-only audit record for a verification
// attempt or outcome. Entries are never mutated or deleted.
type PaymentLogEntry struct {
	ID             string
	NamingID       string
	OrderID        string
	Result         PaymentLogResult
	Phase          PaymentPhase
	HTTPStatus     int
	ProviderStatus string
	ProviderCode   string
	Message        string
	Details        string
	RawResponse    string
	RequestID      string
	CreatedAt      time.Time
}
