package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	domain "github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/payments"
	"github.com/jakmyungso/api/internal/repositories"
)

const (
	defaultVerifyRetries    = 6
	defaultVerifyRetryDelay = 350 * time.Millisecond

	eventCheckoutSessionCreated = "payments.checkout.session"
	eventCheckoutCompleted      = "payments.checkout.completed"
	eventGenerationDispatch     = "payments.generation.dispatch"
)

var (
	// ErrPaymentInvalidInput signals the caller provided invalid arguments.
	ErrPaymentInvalidInput = errors.New("payment: invalid input")
	// ErrPaymentNamingNotFound indicates the naming could not be located.
	ErrPaymentNamingNotFound = errors.New("payment: naming not found")
	// ErrPaymentNotCompleted indicates the checkout session has not been paid.
	ErrPaymentNotCompleted = errors.New("payment: not completed")
)

// NamingGenerator runs generation synchronously for one naming. NamingService
// satisfies it.
type NamingGenerator interface {
	Generate(ctx context.Context, namingID string) error
}

// PaymentVerifyConfig tunes the in-app purchase verification machine.
type PaymentVerifyConfig struct {
	// AllowMock enables the mock completion path for requests without an
	// order id. Never enabled in production.
	AllowMock bool
	// Retries is the total number of order-status attempts.
	Retries int
	// RetryDelay is the pause between order-status attempts.
	RetryDelay time.Duration
	// ExpectedProductID, when set, must match the product the provider reports.
	ExpectedProductID string
	// ExpectedAmount, when positive, must match the amount the provider reports.
	ExpectedAmount int64
}

// PaymentServiceDeps bundles the collaborators required to construct a payment service.
type PaymentServiceDeps struct {
	Namings     repositories.NamingRepository
	PaymentLogs repositories.PaymentLogRepository
	Audit       PaymentLogService
	Orders      payments.OrderStatusClient
	Checkout    payments.CheckoutProvider
	Dispatcher  GenerationDispatcher
	Generator   NamingGenerator
	BaseURL     string
	Verify      PaymentVerifyConfig
	Clock       func() time.Time
	Sleep       func(ctx context.Context, d time.Duration)
	Logger      func(ctx context.Context, event string, fields map[string]any)
}

type paymentService struct {
	namings     repositories.NamingRepository
	paymentLogs repositories.PaymentLogRepository
	audit       PaymentLogService
	orders      payments.OrderStatusClient
	checkout    payments.CheckoutProvider
	dispatcher  GenerationDispatcher
	generator   NamingGenerator
	baseURL     string
	verify      PaymentVerifyConfig
	clock       func() time.Time
	sleep       func(context.Context, time.Duration)
	logger      func(context.Context, string, map[string]any)
}

// NewPaymentService wires dependencies into a concrete PaymentService implementation.
func NewPaymentService(deps PaymentServiceDeps) (PaymentService, error) {
	if deps.Namings == nil {
		return nil, errors.New("payment service: naming repository is required")
	}
	if deps.Audit == nil {
		return nil, errors.New("payment service: payment log service is required")
	}

	verify := deps.Verify
	if verify.Retries <= 0 {
		verify.Retries = defaultVerifyRetries
	}
	if verify.RetryDelay <= 0 {
		verify.RetryDelay = defaultVerifyRetryDelay
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	sleep := deps.Sleep
	if sleep == nil {
		sleep = func(ctx context.Context, d time.Duration) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &paymentService{
		namings:     deps.Namings,
		paymentLogs: deps.PaymentLogs,
		audit:       deps.Audit,
		orders:      deps.Orders,
		checkout:    deps.Checkout,
		dispatcher:  deps.Dispatcher,
		generator:   deps.Generator,
		baseURL:     strings.TrimRight(strings.TrimSpace(deps.BaseURL), "/"),
		verify:      verify,
		clock: func() time.Time {
			return clock().UTC()
		},
		sleep:  sleep,
		logger: logger,
	}, nil
}

// VerifyAndComplete runs the in-app purchase verification state machine.
// Every branch records exactly one audit entry and is reported through the
// outcome; the handler maps it onto an HTTP response.
func (s *paymentService) VerifyAndComplete(ctx context.Context, cmd VerifyOrderCommand) VerifyOrderOutcome {
	namingID := strings.TrimSpace(cmd.NamingID)
	orderID := strings.TrimSpace(cmd.OrderID)
	userKey := strings.TrimSpace(cmd.UserKey)

	if namingID == "" {
		s.record(ctx, cmd, PaymentLogRecord{
			Phase:      domain.PhaseValidationFailed,
			Result:     domain.PaymentLogFailure,
			HTTPStatus: http.StatusBadRequest,
			Message:    "namingId가 필요합니다",
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseValidationFailed,
			HTTPStatus: http.StatusBadRequest,
			Message:    "namingId가 필요합니다",
		}
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			s.record(ctx, cmd, PaymentLogRecord{
				NamingID:   namingID,
				OrderID:    orderID,
				Phase:      domain.PhaseNamingNotFound,
				Result:     domain.PaymentLogFailure,
				HTTPStatus: http.StatusNotFound,
				Message:    "작명 결과를 찾을 수 없습니다",
			})
			return VerifyOrderOutcome{
				Phase:      domain.PhaseNamingNotFound,
				HTTPStatus: http.StatusNotFound,
				Message:    "작명 결과를 찾을 수 없습니다",
			}
		}
		return s.exception(ctx, cmd, namingID, orderID, err)
	}

	if naming.PaymentStatus == domain.PaymentStatusPaid {
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:       namingID,
			OrderID:        naming.OrderID,
			Phase:          domain.PhaseAlreadyPaid,
			Result:         domain.PaymentLogInfo,
			HTTPStatus:     http.StatusOK,
			ProviderStatus: "ALREADY_PAID",
			Message:        "이미 결제 완료된 namingId",
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseAlreadyPaid,
			HTTPStatus: http.StatusOK,
			OK:         true,
			Message:    "이미 결제 완료된 namingId",
			OrderID:    naming.OrderID,
			PaidAt:     naming.PaidAt,
		}
	}

	if s.verify.AllowMock && orderID == "" {
		now := s.clock()
		result, err := s.namings.MarkPaid(ctx, namingID, repositories.PaidUpdate{PaidAt: now})
		if err != nil {
			return s.exception(ctx, cmd, namingID, orderID, err)
		}
		paidAt := result.Naming.PaidAt
		if paidAt == nil {
			paidAt = &now
		}
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:       namingID,
			Phase:          domain.PhaseMockPaid,
			Result:         domain.PaymentLogSuccess,
			HTTPStatus:     http.StatusOK,
			ProviderStatus: "MOCK_PAID",
			Message:        "모의 결제 완료 처리",
			Details:        "ALLOW_IAP_MOCK=true",
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseMockPaid,
			HTTPStatus: http.StatusOK,
			OK:         true,
			Mocked:     true,
			Message:    "모의 결제 완료 처리",
			PaidAt:     paidAt,
		}
	}

	if userKey == "" {
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:   namingID,
			OrderID:    orderID,
			Phase:      domain.PhaseValidationFailed,
			Result:     domain.PaymentLogFailure,
			HTTPStatus: http.StatusBadRequest,
			Message:    "userKey가 필요합니다",
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseValidationFailed,
			HTTPStatus: http.StatusBadRequest,
			Message:    "userKey가 필요합니다. 토스 로그인 연동 후 전달해주세요",
		}
	}

	effectiveOrderID := s.resolveOrderID(ctx, cmd, namingID, orderID, naming)
	if effectiveOrderID == "" {
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:   namingID,
			Phase:      domain.PhaseOrderIDMissing,
			Result:     domain.PaymentLogFailure,
			HTTPStatus: http.StatusBadRequest,
			Message:    "orderId를 찾을 수 없습니다",
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseOrderIDMissing,
			HTTPStatus: http.StatusBadRequest,
			Message:    "orderId를 찾을 수 없습니다. 같은 결과 화면에서 다시 시도해주세요.",
		}
	}

	if outcome, reused := s.checkOrderReuse(ctx, cmd, namingID, effectiveOrderID); reused {
		return outcome
	}

	resp, lastErr := s.lookupOrderWithRetry(ctx, effectiveOrderID, userKey)
	if resp == nil {
		details := ""
		if lastErr != nil {
			details = lastErr.Error()
		}
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:   namingID,
			OrderID:    effectiveOrderID,
			Phase:      domain.PhaseVerifyNetworkError,
			Result:     domain.PaymentLogFailure,
			HTTPStatus: http.StatusBadGateway,
			Message:    "토스 주문 검증 네트워크 오류",
			Details:    details,
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseVerifyNetworkError,
			HTTPStatus: http.StatusBadGateway,
			Message:    "토스 주문 검증 네트워크 오류가 발생했습니다",
			OrderID:    effectiveOrderID,
		}
	}

	hint := payments.ExtractStatusHint(resp.Payload)
	paid := resp.StatusCode >= 200 && resp.StatusCode < 300 && payments.IsOrderPaid(resp.Payload)

	if !paid {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg := fmt.Sprintf("토스 주문 검증 API 호출에 실패했습니다 (http:%d, status:%s code:%s)",
				resp.StatusCode, orDash(hint.Status), orDash(hint.Code))
			s.record(ctx, cmd, PaymentLogRecord{
				NamingID:       namingID,
				OrderID:        effectiveOrderID,
				Phase:          domain.PhaseVerifyAPIFailed,
				Result:         domain.PaymentLogFailure,
				HTTPStatus:     resp.StatusCode,
				ProviderStatus: hint.Status,
				ProviderCode:   hint.Code,
				Message:        msg,
				RawResponse:    resp.Raw,
			})
			return VerifyOrderOutcome{
				Phase:      domain.PhaseVerifyAPIFailed,
				HTTPStatus: http.StatusBadGateway,
				Message:    msg,
				OrderID:    effectiveOrderID,
			}
		}

		msg := fmt.Sprintf("결제가 완료 상태가 아닙니다 (status:%s code:%s)", orDash(hint.Status), orDash(hint.Code))
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:       namingID,
			OrderID:        effectiveOrderID,
			Phase:          domain.PhaseVerifyNotPaid,
			Result:         domain.PaymentLogFailure,
			HTTPStatus:     http.StatusConflict,
			ProviderStatus: hint.Status,
			ProviderCode:   hint.Code,
			Message:        msg,
			RawResponse:    resp.Raw,
		})
		return VerifyOrderOutcome{
			Phase:      domain.PhaseVerifyNotPaid,
			HTTPStatus: http.StatusConflict,
			Message:    msg,
			OrderID:    effectiveOrderID,
		}
	}

	fields := payments.ExtractVerificationFields(resp.Payload)
	if outcome, mismatched := s.checkFieldMismatch(ctx, cmd, namingID, effectiveOrderID, hint, fields, resp.Raw); mismatched {
		return outcome
	}

	now := s.clock()
	result, err := s.namings.MarkPaid(ctx, namingID, repositories.PaidUpdate{OrderID: effectiveOrderID, PaidAt: now})
	if err != nil {
		return s.exception(ctx, cmd, namingID, effectiveOrderID, err)
	}
	paidAt := result.Naming.PaidAt
	if paidAt == nil {
		paidAt = &now
	}

	s.record(ctx, cmd, PaymentLogRecord{
		NamingID:       namingID,
		OrderID:        effectiveOrderID,
		Phase:          domain.PhaseVerifyPaid,
		Result:         domain.PaymentLogSuccess,
		HTTPStatus:     http.StatusOK,
		ProviderStatus: orDash(hint.Status),
		ProviderCode:   hint.Code,
		Message:        "결제 검증 완료",
		RawResponse:    resp.Raw,
	})

	s.dispatchGeneration(ctx, result.Naming)

	return VerifyOrderOutcome{
		Phase:      domain.PhaseVerifyPaid,
		HTTPStatus: http.StatusOK,
		OK:         true,
		Message:    "결제 검증 완료",
		OrderID:    effectiveOrderID,
		PaidAt:     paidAt,
	}
}

// resolveOrderID falls back from the request to the naming document and then
// to the most recent order id in the audit trail. A recovery is logged but
// does not terminate the machine.
func (s *paymentService) resolveOrderID(ctx context.Context, cmd VerifyOrderCommand, namingID string, orderID string, naming domain.Naming) string {
	effective := orderID
	if effective == "" {
		effective = strings.TrimSpace(naming.OrderID)
	}
	if effective == "" && s.paymentLogs != nil {
		recovered, err := s.paymentLogs.LatestOrderIDByNaming(ctx, namingID)
		if err == nil {
			effective = strings.TrimSpace(recovered)
		}
	}
	if effective != "" && orderID == "" {
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:   namingID,
			OrderID:    effective,
			Phase:      domain.PhaseOrderIDRecovered,
			Result:     domain.PaymentLogInfo,
			HTTPStatus: http.StatusOK,
			Message:    "요청에 orderId가 없어 기존 결제 이력에서 복구",
		})
	}
	return effective
}

func (s *paymentService) checkOrderReuse(ctx context.Context, cmd VerifyOrderCommand, namingID string, orderID string) (VerifyOrderOutcome, bool) {
	if s.paymentLogs == nil {
		return VerifyOrderOutcome{}, false
	}
	owner, err := s.paymentLogs.FindPaidNamingIDByOrderID(ctx, orderID)
	if err != nil || owner == "" || owner == namingID {
		return VerifyOrderOutcome{}, false
	}

	s.record(ctx, cmd, PaymentLogRecord{
		NamingID:   namingID,
		OrderID:    orderID,
		Phase:      domain.PhaseOrderIDReused,
		Result:     domain.PaymentLogFailure,
		HTTPStatus: http.StatusConflict,
		Message:    fmt.Sprintf("이미 다른 결과에서 결제 완료된 orderId입니다 (owner:%s)", owner),
	})
	return VerifyOrderOutcome{
		Phase:      domain.PhaseOrderIDReused,
		HTTPStatus: http.StatusConflict,
		Message:    "이미 사용된 결제 주문번호입니다. 새로운 결제로 다시 시도해주세요.",
		OrderID:    orderID,
	}, true
}

// lookupOrderWithRetry polls the provider until a 2xx paid response arrives
// or the attempts run out. The last response wins; transport errors only
// count when no response was ever received.
func (s *paymentService) lookupOrderWithRetry(ctx context.Context, orderID string, userKey string) (*payments.OrderStatusResponse, error) {
	if s.orders == nil {
		return nil, errors.New("payment service: order status client is not configured")
	}

	attempts := s.verify.Retries
	if attempts < 1 {
		attempts = 1
	}

	var last *payments.OrderStatusResponse
	var lastErr error
	for i := 0; i < attempts; i++ {
		resp, err := s.orders.OrderStatus(ctx, orderID, userKey)
		if err != nil {
			lastErr = err
		} else {
			respCopy := resp
			last = &respCopy
			lastErr = nil
			if resp.StatusCode >= 200 && resp.StatusCode < 300 && payments.IsOrderPaid(resp.Payload) {
				return last, nil
			}
		}
		if i < attempts-1 {
			s.sleep(ctx, s.verify.RetryDelay)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return last, lastErr
}

func (s *paymentService) checkFieldMismatch(ctx context.Context, cmd VerifyOrderCommand, namingID string, orderID string, hint payments.StatusHint, fields payments.VerificationFields, raw string) (VerifyOrderOutcome, bool) {
	if fields.OrderID != "" && fields.OrderID != orderID {
		return s.mismatch(ctx, cmd, namingID, orderID, raw, domain.PhaseVerifyOrderMismatch, "ORDER_MISMATCH",
			fmt.Sprintf("토스 응답 orderId 불일치 (expected:%s, actual:%s)", orderID, fields.OrderID),
			"결제 주문번호 검증에 실패했습니다. 다시 시도해주세요."), true
	}
	if expected := strings.TrimSpace(s.verify.ExpectedProductID); expected != "" && fields.ProductID != "" && fields.ProductID != expected {
		return s.mismatch(ctx, cmd, namingID, orderID, raw, domain.PhaseVerifyProductMismatch, "PRODUCT_MISMATCH",
			fmt.Sprintf("토스 응답 상품 불일치 (expected:%s, actual:%s)", expected, fields.ProductID),
			"결제 상품 검증에 실패했습니다. 다시 시도해주세요."), true
	}
	if s.verify.ExpectedAmount > 0 && fields.HasAmount && fields.Amount != s.verify.ExpectedAmount {
		return s.mismatch(ctx, cmd, namingID, orderID, raw, domain.PhaseVerifyAmountMismatch, "AMOUNT_MISMATCH",
			fmt.Sprintf("토스 응답 금액 불일치 (expected:%d, actual:%d)", s.verify.ExpectedAmount, fields.Amount),
			"결제 금액 검증에 실패했습니다. 다시 시도해주세요."), true
	}

	partial := fields.OrderID == "" ||
		(strings.TrimSpace(s.verify.ExpectedProductID) != "" && fields.ProductID == "") ||
		(s.verify.ExpectedAmount > 0 && !fields.HasAmount)
	if partial {
		s.record(ctx, cmd, PaymentLogRecord{
			NamingID:       namingID,
			OrderID:        orderID,
			Phase:          domain.PhaseVerifyFieldsPartial,
			Result:         domain.PaymentLogInfo,
			HTTPStatus:     http.StatusOK,
			ProviderStatus: hint.Status,
			ProviderCode:   hint.Code,
			Message:        "토스 응답에서 일부 검증 필드를 확인하지 못했습니다",
			Details:        encodeFieldComparison(s.verify, orderID, fields),
		})
	}
	return VerifyOrderOutcome{}, false
}

func (s *paymentService) mismatch(ctx context.Context, cmd VerifyOrderCommand, namingID string, orderID string, raw string, phase domain.PaymentPhase, providerStatus string, logMsg string, respMsg string) VerifyOrderOutcome {
	s.record(ctx, cmd, PaymentLogRecord{
		NamingID:       namingID,
		OrderID:        orderID,
		Phase:          phase,
		Result:         domain.PaymentLogFailure,
		HTTPStatus:     http.StatusConflict,
		ProviderStatus: providerStatus,
		Message:        logMsg,
		RawResponse:    raw,
	})
	return VerifyOrderOutcome{
		Phase:      phase,
		HTTPStatus: http.StatusConflict,
		Message:    respMsg,
		OrderID:    orderID,
	}
}

func (s *paymentService) exception(ctx context.Context, cmd VerifyOrderCommand, namingID string, orderID string, err error) VerifyOrderOutcome {
	message := "결제 완료 처리에 실패했습니다"
	details := ""
	if err != nil {
		details = err.Error()
	}
	s.record(ctx, cmd, PaymentLogRecord{
		NamingID:   namingID,
		OrderID:    orderID,
		Phase:      domain.PhaseException,
		Result:     domain.PaymentLogFailure,
		HTTPStatus: http.StatusInternalServerError,
		Message:    message,
		Details:    details,
	})
	return VerifyOrderOutcome{
		Phase:      domain.PhaseException,
		HTTPStatus: http.StatusInternalServerError,
		Message:    message,
		OrderID:    orderID,
	}
}

func (s *paymentService) record(ctx context.Context, cmd VerifyOrderCommand, rec PaymentLogRecord) {
	rec.RequestID = cmd.RequestID
	s.audit.Record(ctx, rec)
}

// CreateCheckoutSession opens a Stripe Checkout session for an existing
// naming and records the session id on its document.
func (s *paymentService) CreateCheckoutSession(ctx context.Context, cmd CheckoutSessionCommand) (CheckoutSessionResult, error) {
	namingID := strings.TrimSpace(cmd.NamingID)
	if namingID == "" {
		return CheckoutSessionResult{}, fmt.Errorf("%w: naming id is required", ErrPaymentInvalidInput)
	}
	if s.checkout == nil {
		return CheckoutSessionResult{}, errors.New("payment service: checkout provider is not configured")
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return CheckoutSessionResult{}, ErrPaymentNamingNotFound
		}
		return CheckoutSessionResult{}, err
	}
	if naming.PaymentStatus == domain.PaymentStatusPaid {
		return CheckoutSessionResult{}, fmt.Errorf("%w: naming already paid", ErrPaymentInvalidInput)
	}

	session, err := s.checkout.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		NamingID:       namingID,
		BaseURL:        s.baseURL,
		IdempotencyKey: strings.TrimSpace(cmd.IdempotencyKey),
	})
	if err != nil {
		return CheckoutSessionResult{}, err
	}
	if err := s.namings.AttachStripeSession(ctx, namingID, session.ID, s.clock()); err != nil {
		return CheckoutSessionResult{}, err
	}

	s.logger(ctx, eventCheckoutSessionCreated, map[string]any{
		"naming_id":  namingID,
		"session_id": session.ID,
	})
	return CheckoutSessionResult{
		NamingID:   namingID,
		SessionID:  session.ID,
		SessionURL: session.URL,
	}, nil
}

// HandleCheckoutCompleted marks the naming paid for a completed checkout
// session and dispatches generation. Replays are absorbed silently so the
// webhook can always be acknowledged.
func (s *paymentService) HandleCheckoutCompleted(ctx context.Context, sessionID string, namingID string) error {
	sessionID = strings.TrimSpace(sessionID)
	namingID = strings.TrimSpace(namingID)
	if sessionID == "" && namingID == "" {
		return fmt.Errorf("%w: session id or naming id is required", ErrPaymentInvalidInput)
	}

	if namingID == "" {
		naming, err := s.namings.FindByStripeSession(ctx, sessionID)
		if err != nil {
			if isRepositoryNotFound(err) {
				return ErrPaymentNamingNotFound
			}
			return err
		}
		namingID = naming.ID
	}

	result, err := s.namings.MarkPaid(ctx, namingID, repositories.PaidUpdate{
		StripeSessionID: sessionID,
		PaidAt:          s.clock(),
	})
	if err != nil {
		if isRepositoryNotFound(err) {
			return ErrPaymentNamingNotFound
		}
		return err
	}

	s.logger(ctx, eventCheckoutCompleted, map[string]any{
		"naming_id":    namingID,
		"session_id":   sessionID,
		"already_paid": result.AlreadyPaid,
	})
	if result.AlreadyPaid {
		return nil
	}

	s.dispatchGeneration(ctx, result.Naming)
	return nil
}

// VerifyBySession is the fallback for a missed webhook: the client returns
// from checkout, the session is verified with the provider and generation is
// run synchronously.
func (s *paymentService) VerifyBySession(ctx context.Context, cmd VerifyBySessionCommand) (VerifyBySessionOutcome, error) {
	namingID := strings.TrimSpace(cmd.NamingID)
	sessionID := strings.TrimSpace(cmd.SessionID)
	if namingID == "" || sessionID == "" {
		return VerifyBySessionOutcome{}, fmt.Errorf("%w: naming id and session id are required", ErrPaymentInvalidInput)
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return VerifyBySessionOutcome{}, ErrPaymentNamingNotFound
		}
		return VerifyBySessionOutcome{}, err
	}

	if naming.GenerationStatus == domain.GenerationStatusCompleted {
		return VerifyBySessionOutcome{Status: VerifyBySessionCompleted}, nil
	}

	if naming.PaymentStatus != domain.PaymentStatusPaid && naming.PaymentStatus != domain.PaymentStatusFree {
		if s.checkout == nil {
			return VerifyBySessionOutcome{}, errors.New("payment service: checkout provider is not configured")
		}
		status, err := s.checkout.RetrieveSession(ctx, sessionID)
		if err != nil {
			return VerifyBySessionOutcome{}, err
		}
		if status.NamingID != "" && status.NamingID != namingID {
			return VerifyBySessionOutcome{}, fmt.Errorf("%w: session belongs to another naming", ErrPaymentInvalidInput)
		}
		if !status.Paid {
			return VerifyBySessionOutcome{}, ErrPaymentNotCompleted
		}
		if _, err := s.namings.MarkPaid(ctx, namingID, repositories.PaidUpdate{
			StripeSessionID: sessionID,
			PaidAt:          s.clock(),
		}); err != nil {
			return VerifyBySessionOutcome{}, err
		}
	}

	if naming.GenerationStatus == domain.GenerationStatusGenerating {
		return VerifyBySessionOutcome{Status: VerifyBySessionGenerating}, nil
	}

	if s.generator == nil {
		return VerifyBySessionOutcome{}, errors.New("payment service: generator is not configured")
	}
	if err := s.generator.Generate(ctx, namingID); err != nil {
		return VerifyBySessionOutcome{}, err
	}
	return VerifyBySessionOutcome{Status: VerifyBySessionStarted}, nil
}

// dispatchGeneration hands a freshly paid naming to the background pipeline.
// Best effort: a dispatch failure is logged and recovered by the
// verify-by-session fallback.
func (s *paymentService) dispatchGeneration(ctx context.Context, naming domain.Naming) {
	if s.dispatcher == nil {
		return
	}
	if naming.Result != nil || naming.GenerationStatus == domain.GenerationStatusCompleted ||
		naming.GenerationStatus == domain.GenerationStatusGenerating {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, naming.ID); err != nil {
		s.logger(ctx, eventGenerationDispatch, map[string]any{
			"naming_id": naming.ID,
			"error":     err.Error(),
		})
	}
}

func encodeFieldComparison(cfg PaymentVerifyConfig, orderID string, fields payments.VerificationFields) string {
	type side struct {
		OrderID   string `json:"orderId,omitempty"`
		ProductID string `json:"productId,omitempty"`
		Amount    int64  `json:"amount,omitempty"`
	}
	payload := struct {
		Expected side `json:"expected"`
		Actual   side `json:"actual"`
	}{
		Expected: side{OrderID: orderID, ProductID: cfg.ExpectedProductID, Amount: cfg.ExpectedAmount},
		Actual:   side{OrderID: fields.OrderID, ProductID: fields.ProductID, Amount: fields.Amount},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(data)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func isRepositoryNotFound(err error) bool {
	var repoErr repositories.RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsNotFound()
}
