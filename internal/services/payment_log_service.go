package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domain "github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/repositories"
)

// rawResponseLimit bounds how much provider payload a single log entry keeps.
const rawResponseLimit = 4000

// PaymentLogger defines the logging contract used by the payment log writer.
type PaymentLogger interface {
	Warnf(format string, args ...any)
}

type paymentLogService struct {
	repo   repositories.PaymentLogRepository
	clock  func() time.Time
	newID  func() string
	logger PaymentLogger
}

// PaymentLogServiceDeps bundles constructor inputs for the payment log writer.
type PaymentLogServiceDeps struct {
	Repository  repositories.PaymentLogRepository
	Clock       func() time.Time
	IDGenerator func() string
	Logger      PaymentLogger
}

// NewPaymentLogService creates a payment log writer backed by the supplied repository.
func NewPaymentLogService(deps PaymentLogServiceDeps) (PaymentLogService, error) {
	if deps.Repository == nil {
		return nil, fmt.Errorf("payment log service: repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string {
			return "plg_" + ulid.Make().String()
		}
	}
	logger := deps.Logger
	if logger == nil {
		logger = noopPaymentLogger{}
	}

	return &paymentLogService{
		repo:   deps.Repository,
		clock:  func() time.Time { return clock().UTC() },
		newID:  idGen,
		logger: logger,
	}, nil
}

// Record persists a log entry. Repository failures are logged but do not
// bubble up so that auditing can never interrupt the payment flow.
func (s *paymentLogService) Record(ctx context.Context, record PaymentLogRecord) {
	if s.repo == nil {
		return
	}
	entry := s.buildEntry(record)
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Warnf("payment log append failed (naming=%s phase=%s): %v", entry.NamingID, entry.Phase, err)
	}
}

// List delegates to the repository for paginated per-naming entries.
func (s *paymentLogService) List(ctx context.Context, namingID string, pager Pagination) (domain.CursorPage[PaymentLogEntry], error) {
	if s.repo == nil {
		return domain.CursorPage[PaymentLogEntry]{}, fmt.Errorf("payment log service: repository is required")
	}
	return s.repo.ListByNaming(ctx, strings.TrimSpace(namingID), pager)
}

func (s *paymentLogService) buildEntry(record PaymentLogRecord) domain.PaymentLogEntry {
	result := record.Result
	switch result {
	case domain.PaymentLogSuccess, domain.PaymentLogFailure, domain.PaymentLogInfo:
	default:
		result = domain.PaymentLogInfo
	}
	return domain.PaymentLogEntry{
		ID:             s.newID(),
		NamingID:       strings.TrimSpace(record.NamingID),
		OrderID:        strings.TrimSpace(record.OrderID),
		Result:         result,
		Phase:          record.Phase,
		HTTPStatus:     record.HTTPStatus,
		ProviderStatus: strings.TrimSpace(record.ProviderStatus),
		ProviderCode:   strings.TrimSpace(record.ProviderCode),
		Message:        strings.TrimSpace(record.Message),
		Details:        strings.TrimSpace(record.Details),
		RawResponse:    truncateRawResponse(record.RawResponse),
		RequestID:      strings.TrimSpace(record.RequestID),
		CreatedAt:      s.clock(),
	}
}

func truncateRawResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= rawResponseLimit {
		return raw
	}
	cut := raw[:rawResponseLimit]
	for len(cut) > 0 && !isValidUTF8Boundary(raw, len(cut)) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

func isValidUTF8Boundary(s string, i int) bool {
	if i == 0 || i >= len(s) {
		return true
	}
	return s[i]&0xC0 != 0x80
}

type noopPaymentLogger struct{}

func (noopPaymentLogger) Warnf(string, ...any) {}
