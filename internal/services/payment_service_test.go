package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	domain "github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/payments"
	"github.com/jakmyungso/api/internal/repositories"
)

type repoNotFoundErr struct{}

func (repoNotFoundErr) Error() string       { return "not found" }
func (repoNotFoundErr) IsNotFound() bool    { return true }
func (repoNotFoundErr) IsConflict() bool    { return false }
func (repoNotFoundErr) IsUnavailable() bool { return false }

type stubNamingRepo struct {
	namings       map[string]domain.Naming
	findErr       error
	markPaidErr   error
	markPaidCalls []repositories.PaidUpdate
	attached      map[string]string
	statusUpdates []domain.GenerationStatus
}

func newStubNamingRepo(namings ...domain.Naming) *stubNamingRepo {
	repo := &stubNamingRepo{
		namings:  map[string]domain.Naming{},
		attached: map[string]string{},
	}
	for _, n := range namings {
		repo.namings[n.ID] = n
	}
	return repo
}

func (r *stubNamingRepo) Insert(_ context.Context, naming domain.Naming) error {
	r.namings[naming.ID] = naming
	return nil
}

func (r *stubNamingRepo) FindByID(_ context.Context, namingID string) (domain.Naming, error) {
	if r.findErr != nil {
		return domain.Naming{}, r.findErr
	}
	naming, ok := r.namings[namingID]
	if !ok {
		return domain.Naming{}, repoNotFoundErr{}
	}
	return naming, nil
}

func (r *stubNamingRepo) FindByStripeSession(_ context.Context, sessionID string) (domain.Naming, error) {
	for _, naming := range r.namings {
		if naming.StripeSessionID == sessionID {
			return naming, nil
		}
	}
	return domain.Naming{}, repoNotFoundErr{}
}

func (r *stubNamingRepo) ListByUser(context.Context, string, domain.Pagination) (domain.CursorPage[domain.Naming], error) {
	return domain.CursorPage[domain.Naming]{}, nil
}

func (r *stubNamingRepo) AttachStripeSession(_ context.Context, namingID string, sessionID string, _ time.Time) error {
	naming, ok := r.namings[namingID]
	if !ok {
		return repoNotFoundErr{}
	}
	naming.StripeSessionID = sessionID
	r.namings[namingID] = naming
	r.attached[namingID] = sessionID
	return nil
}

func (r *stubNamingRepo) MarkPaid(_ context.Context, namingID string, update repositories.PaidUpdate) (repositories.MarkPaidResult, error) {
	if r.markPaidErr != nil {
		return repositories.MarkPaidResult{}, r.markPaidErr
	}
	naming, ok := r.namings[namingID]
	if !ok {
		return repositories.MarkPaidResult{}, repoNotFoundErr{}
	}
	if naming.PaymentStatus == domain.PaymentStatusPaid {
		return repositories.MarkPaidResult{AlreadyPaid: true, Naming: naming}, nil
	}
	r.markPaidCalls = append(r.markPaidCalls, update)
	paidAt := update.PaidAt.UTC()
	naming.PaymentStatus = domain.PaymentStatusPaid
	naming.PaidAt = &paidAt
	if update.OrderID != "" {
		naming.OrderID = update.OrderID
	}
	if update.StripeSessionID != "" {
		naming.StripeSessionID = update.StripeSessionID
	}
	r.namings[namingID] = naming
	return repositories.MarkPaidResult{Naming: naming}, nil
}

func (r *stubNamingRepo) UpdateGenerationStatus(_ context.Context, namingID string, status domain.GenerationStatus, _ time.Time) error {
	naming, ok := r.namings[namingID]
	if !ok {
		return repoNotFoundErr{}
	}
	naming.GenerationStatus = status
	r.namings[namingID] = naming
	r.statusUpdates = append(r.statusUpdates, status)
	return nil
}

func (r *stubNamingRepo) SaveResult(_ context.Context, namingID string, result domain.NamingResult, rawRef string, _ time.Time) error {
	naming, ok := r.namings[namingID]
	if !ok {
		return repoNotFoundErr{}
	}
	naming.Result = &result
	naming.GenerationStatus = domain.GenerationStatusCompleted
	naming.RawResponseRef = rawRef
	r.namings[namingID] = naming
	return nil
}

type stubPaymentServiceLogRepo struct {
	paidOwner   string
	latestOrder string
}

func (r *stubPaymentServiceLogRepo) Append(context.Context, domain.PaymentLogEntry) error { return nil }

func (r *stubPaymentServiceLogRepo) ListByNaming(context.Context, string, domain.Pagination) (domain.CursorPage[domain.PaymentLogEntry], error) {
	return domain.CursorPage[domain.PaymentLogEntry]{}, nil
}

func (r *stubPaymentServiceLogRepo) FindPaidNamingIDByOrderID(context.Context, string) (string, error) {
	if r.paidOwner == "" {
		return "", repoNotFoundErr{}
	}
	return r.paidOwner, nil
}

func (r *stubPaymentServiceLogRepo) LatestOrderIDByNaming(context.Context, string) (string, error) {
	if r.latestOrder == "" {
		return "", repoNotFoundErr{}
	}
	return r.latestOrder, nil
}

type captureAudit struct {
	records []PaymentLogRecord
}

func (a *captureAudit) Record(_ context.Context, record PaymentLogRecord) {
	a.records = append(a.records, record)
}

func (a *captureAudit) List(context.Context, string, Pagination) (domain.CursorPage[PaymentLogEntry], error) {
	return domain.CursorPage[PaymentLogEntry]{}, nil
}

func (a *captureAudit) phases() []domain.PaymentPhase {
	phases := make([]domain.PaymentPhase, 0, len(a.records))
	for _, rec := range a.records {
		phases = append(phases, rec.Phase)
	}
	return phases
}

type stubOrderClient struct {
	responses []payments.OrderStatusResponse
	errs      []error
	calls     int
	userKeys  []string
}

func (c *stubOrderClient) OrderStatus(_ context.Context, _ string, userKey string) (payments.OrderStatusResponse, error) {
	i := c.calls
	c.calls++
	c.userKeys = append(c.userKeys, userKey)
	if i < len(c.errs) && c.errs[i] != nil {
		return payments.OrderStatusResponse{}, c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	if len(c.responses) > 0 {
		return c.responses[len(c.responses)-1], nil
	}
	return payments.OrderStatusResponse{}, errors.New("no scripted response")
}

type stubCheckoutProvider struct {
	session     payments.CheckoutSession
	createErr   error
	status      payments.SessionStatus
	retrieveErr error
	requests    []payments.CheckoutRequest
}

func (p *stubCheckoutProvider) CreateCheckoutSession(_ context.Context, req payments.CheckoutRequest) (payments.CheckoutSession, error) {
	p.requests = append(p.requests, req)
	if p.createErr != nil {
		return payments.CheckoutSession{}, p.createErr
	}
	return p.session, nil
}

func (p *stubCheckoutProvider) RetrieveSession(context.Context, string) (payments.SessionStatus, error) {
	if p.retrieveErr != nil {
		return payments.SessionStatus{}, p.retrieveErr
	}
	return p.status, nil
}

type stubDispatcher struct {
	ids []string
	err error
}

func (d *stubDispatcher) Dispatch(_ context.Context, namingID string) error {
	d.ids = append(d.ids, namingID)
	return d.err
}

type stubGenerator struct {
	ids []string
	err error
}

func (g *stubGenerator) Generate(_ context.Context, namingID string) error {
	g.ids = append(g.ids, namingID)
	return g.err
}

func paidOrderPayload(orderID string) any {
	return map[string]any{
		"result": map[string]any{
			"status":  "DONE",
			"orderId": orderID,
			"sku":     "naming-basic",
			"amount":  float64(550),
		},
	}
}

func pendingNaming(id string) domain.Naming {
	return domain.Naming{
		ID:               id,
		LastName:         "김",
		Gender:           domain.GenderMale,
		PaymentStatus:    domain.PaymentStatusPending,
		GenerationStatus: domain.GenerationStatusPending,
	}
}

type paymentServiceFixture struct {
	service  PaymentService
	namings  *stubNamingRepo
	logs     *stubPaymentServiceLogRepo
	audit    *captureAudit
	orders   *stubOrderClient
	checkout *stubCheckoutProvider
	dispatch *stubDispatcher
	generate *stubGenerator
	sleeps   *int
}

func newPaymentServiceFixture(t *testing.T, mutate func(*PaymentServiceDeps)) *paymentServiceFixture {
	t.Helper()

	fixture := &paymentServiceFixture{
		namings:  newStubNamingRepo(),
		logs:     &stubPaymentServiceLogRepo{},
		audit:    &captureAudit{},
		orders:   &stubOrderClient{},
		checkout: &stubCheckoutProvider{session: payments.CheckoutSession{ID: "cs_1", URL: "https://stripe.test/cs_1"}},
		dispatch: &stubDispatcher{},
		generate: &stubGenerator{},
		sleeps:   new(int),
	}

	deps := PaymentServiceDeps{
		Namings:     fixture.namings,
		PaymentLogs: fixture.logs,
		Audit:       fixture.audit,
		Orders:      fixture.orders,
		Checkout:    fixture.checkout,
		Dispatcher:  fixture.dispatch,
		Generator:   fixture.generate,
		BaseURL:     "https://naming.test",
		Verify: PaymentVerifyConfig{
			Retries:        3,
			RetryDelay:     time.Millisecond,
			ExpectedAmount: 550,
		},
		Clock: func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
		Sleep: func(context.Context, time.Duration) { *fixture.sleeps++ },
	}
	if mutate != nil {
		mutate(&deps)
	}

	service, err := NewPaymentService(deps)
	if err != nil {
		t.Fatalf("NewPaymentService: %v", err)
	}
	fixture.service = service
	return fixture
}

func TestVerifyAndCompleteRequiresNamingID(t *testing.T) {
	fx := newPaymentServiceFixture(t, nil)

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{UserKey: "uk"})

	if outcome.Phase != domain.PhaseValidationFailed || outcome.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("outcome = %+v", outcome)
	}
	if len(fx.audit.records) != 1 || fx.audit.records[0].Phase != domain.PhaseValidationFailed {
		t.Fatalf("audit = %+v", fx.audit.records)
	}
}

func TestVerifyAndCompleteNamingNotFound(t *testing.T) {
	fx := newPaymentServiceFixture(t, nil)

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_missing", UserKey: "uk"})

	if outcome.Phase != domain.PhaseNamingNotFound || outcome.HTTPStatus != http.StatusNotFound {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestVerifyAndCompleteAlreadyPaidSkipsProvider(t *testing.T) {
	paidAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	naming := pendingNaming("nm_1")
	naming.PaymentStatus = domain.PaymentStatusPaid
	naming.OrderID = "ord-1"
	naming.PaidAt = &paidAt

	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(naming)
	})

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseAlreadyPaid || !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
	if outcome.OrderID != "ord-1" || outcome.PaidAt == nil || !outcome.PaidAt.Equal(paidAt) {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fx.orders.calls != 0 {
		t.Fatalf("provider called %d times for an already paid naming", fx.orders.calls)
	}
}

func TestVerifyAndCompleteMockPaid(t *testing.T) {
	repo := newStubNamingRepo(pendingNaming("nm_1"))
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = repo
		deps.Verify.AllowMock = true
	})

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1"})

	if outcome.Phase != domain.PhaseMockPaid || !outcome.OK || !outcome.Mocked {
		t.Fatalf("outcome = %+v", outcome)
	}
	if len(repo.markPaidCalls) != 1 {
		t.Fatalf("markPaid calls = %d", len(repo.markPaidCalls))
	}
	if fx.orders.calls != 0 {
		t.Fatalf("mock completion must not call the provider")
	}
	if fx.audit.records[0].Details != "ALLOW_IAP_MOCK=true" {
		t.Fatalf("audit details = %q", fx.audit.records[0].Details)
	}
}

func TestVerifyAndCompleteMockDisabledRequiresUserKey(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1"})

	if outcome.Phase != domain.PhaseValidationFailed || outcome.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("outcome = %+v", outcome)
	}
	if !strings.Contains(outcome.Message, "userKey") {
		t.Fatalf("message = %q", outcome.Message)
	}
}

func TestVerifyAndCompleteRecoversOrderIDFromNaming(t *testing.T) {
	naming := pendingNaming("nm_1")
	naming.OrderID = "ord-9"
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(naming)
	})
	fx.orders.responses = []payments.OrderStatusResponse{{StatusCode: 200, Payload: paidOrderPayload("ord-9"), Raw: "{}"}}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyPaid || !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
	if outcome.OrderID != "ord-9" {
		t.Fatalf("order id = %q", outcome.OrderID)
	}
	phases := fx.audit.phases()
	if len(phases) != 2 || phases[0] != domain.PhaseOrderIDRecovered || phases[1] != domain.PhaseVerifyPaid {
		t.Fatalf("phases = %v", phases)
	}
}

func TestVerifyAndCompleteRecoversOrderIDFromAuditTrail(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
		deps.PaymentLogs = &stubPaymentServiceLogRepo{latestOrder: "ord-7"}
	})
	fx.orders.responses = []payments.OrderStatusResponse{{StatusCode: 200, Payload: paidOrderPayload("ord-7"), Raw: "{}"}}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyPaid || outcome.OrderID != "ord-7" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestVerifyAndCompleteOrderIDMissing(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseOrderIDMissing || outcome.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestVerifyAndCompleteRejectsReusedOrderID(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
		deps.PaymentLogs = &stubPaymentServiceLogRepo{paidOwner: "nm_other"}
	})

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseOrderIDReused || outcome.HTTPStatus != http.StatusConflict {
		t.Fatalf("outcome = %+v", outcome)
	}
	if !strings.Contains(fx.audit.records[0].Message, "nm_other") {
		t.Fatalf("audit message = %q", fx.audit.records[0].Message)
	}
	if fx.orders.calls != 0 {
		t.Fatalf("provider called for a reused order id")
	}
}

func TestVerifyAndCompleteAllowsReplayForSameNaming(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
		deps.PaymentLogs = &stubPaymentServiceLogRepo{paidOwner: "nm_1"}
	})
	fx.orders.responses = []payments.OrderStatusResponse{{StatusCode: 200, Payload: paidOrderPayload("ord-1"), Raw: "{}"}}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyPaid || !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestVerifyAndCompleteNetworkErrorAfterRetries(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.errs = []error{
		errors.New("dial tcp: refused"),
		errors.New("dial tcp: refused"),
		errors.New("dial tcp: refused"),
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyNetworkError || outcome.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fx.orders.calls != 3 {
		t.Fatalf("calls = %d, want 3", fx.orders.calls)
	}
	if *fx.sleeps != 2 {
		t.Fatalf("sleeps = %d, want 2", *fx.sleeps)
	}
	if fx.audit.records[0].Details != "dial tcp: refused" {
		t.Fatalf("audit details = %q", fx.audit.records[0].Details)
	}
}

func TestVerifyAndCompleteRetriesUntilPaid(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 200, Payload: map[string]any{"status": "PENDING"}, Raw: "{}"},
		{StatusCode: 200, Payload: paidOrderPayload("ord-1"), Raw: "{}"},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyPaid || !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fx.orders.calls != 2 {
		t.Fatalf("calls = %d, want 2", fx.orders.calls)
	}
	if fx.orders.userKeys[0] != "uk" {
		t.Fatalf("user key = %q", fx.orders.userKeys[0])
	}
}

func TestVerifyAndCompleteAPIFailure(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 500, Payload: map[string]any{"resultType": "FAIL"}, Raw: `{"resultType":"FAIL"}`},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyAPIFailed || outcome.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("outcome = %+v", outcome)
	}
	want := "토스 주문 검증 API 호출에 실패했습니다 (http:500, status:- code:FAIL)"
	if outcome.Message != want {
		t.Fatalf("message = %q, want %q", outcome.Message, want)
	}
	if fx.audit.records[0].HTTPStatus != 500 {
		t.Fatalf("audit http status = %d", fx.audit.records[0].HTTPStatus)
	}
}

func TestVerifyAndCompleteNotPaid(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 200, Payload: map[string]any{"status": "CANCELED", "code": "USER_CANCEL"}, Raw: "{}"},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyNotPaid || outcome.HTTPStatus != http.StatusConflict {
		t.Fatalf("outcome = %+v", outcome)
	}
	want := "결제가 완료 상태가 아닙니다 (status:CANCELED code:USER_CANCEL)"
	if outcome.Message != want {
		t.Fatalf("message = %q", outcome.Message)
	}
}

func TestVerifyAndCompleteAmountMismatch(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 200, Payload: map[string]any{"status": "DONE", "orderId": "ord-1", "amount": float64(1000)}, Raw: "{}"},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyAmountMismatch || outcome.HTTPStatus != http.StatusConflict {
		t.Fatalf("outcome = %+v", outcome)
	}
	if !strings.Contains(fx.audit.records[0].Message, "expected:550, actual:1000") {
		t.Fatalf("audit message = %q", fx.audit.records[0].Message)
	}
}

func TestVerifyAndCompleteOrderMismatch(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 200, Payload: paidOrderPayload("ord-other"), Raw: "{}"},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyOrderMismatch {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fx.audit.records[0].ProviderStatus != "ORDER_MISMATCH" {
		t.Fatalf("provider status = %q", fx.audit.records[0].ProviderStatus)
	}
}

func TestVerifyAndCompletePartialFieldsStillCompletes(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{
		{StatusCode: 200, Payload: map[string]any{"status": "COMPLETE"}, Raw: "{}"},
	}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseVerifyPaid || !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
	phases := fx.audit.phases()
	if len(phases) != 2 || phases[0] != domain.PhaseVerifyFieldsPartial || phases[1] != domain.PhaseVerifyPaid {
		t.Fatalf("phases = %v", phases)
	}
	if fx.audit.records[0].Details == "" {
		t.Fatalf("partial fields entry must carry the comparison details")
	}
}

func TestVerifyAndCompleteMarkPaidFailure(t *testing.T) {
	repo := newStubNamingRepo(pendingNaming("nm_1"))
	repo.markPaidErr = errors.New("firestore unavailable")
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = repo
	})
	fx.orders.responses = []payments.OrderStatusResponse{{StatusCode: 200, Payload: paidOrderPayload("ord-1"), Raw: "{}"}}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if outcome.Phase != domain.PhaseException || outcome.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fx.audit.records[0].Details != "firestore unavailable" {
		t.Fatalf("audit details = %q", fx.audit.records[0].Details)
	}
}

func TestVerifyAndCompleteDispatchesGeneration(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.orders.responses = []payments.OrderStatusResponse{{StatusCode: 200, Payload: paidOrderPayload("ord-1"), Raw: "{}"}}

	outcome := fx.service.VerifyAndComplete(context.Background(), VerifyOrderCommand{NamingID: "nm_1", OrderID: "ord-1", UserKey: "uk"})

	if !outcome.OK {
		t.Fatalf("outcome = %+v", outcome)
	}
	if len(fx.dispatch.ids) != 1 || fx.dispatch.ids[0] != "nm_1" {
		t.Fatalf("dispatched = %v", fx.dispatch.ids)
	}
}

func TestCreateCheckoutSessionAttachesSession(t *testing.T) {
	repo := newStubNamingRepo(pendingNaming("nm_1"))
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = repo
	})

	result, err := fx.service.CreateCheckoutSession(context.Background(), CheckoutSessionCommand{NamingID: "nm_1", IdempotencyKey: "idem-1"})
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if result.SessionID != "cs_1" || result.SessionURL != "https://stripe.test/cs_1" {
		t.Fatalf("result = %+v", result)
	}
	if repo.attached["nm_1"] != "cs_1" {
		t.Fatalf("session not attached: %v", repo.attached)
	}
	req := fx.checkout.requests[0]
	if req.BaseURL != "https://naming.test" || req.IdempotencyKey != "idem-1" {
		t.Fatalf("request = %+v", req)
	}
}

func TestCreateCheckoutSessionRejectsPaidNaming(t *testing.T) {
	naming := pendingNaming("nm_1")
	naming.PaymentStatus = domain.PaymentStatusPaid
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(naming)
	})

	if _, err := fx.service.CreateCheckoutSession(context.Background(), CheckoutSessionCommand{NamingID: "nm_1"}); !errors.Is(err, ErrPaymentInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestHandleCheckoutCompletedFindsBySession(t *testing.T) {
	naming := pendingNaming("nm_1")
	naming.StripeSessionID = "cs_1"
	repo := newStubNamingRepo(naming)
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = repo
	})

	if err := fx.service.HandleCheckoutCompleted(context.Background(), "cs_1", ""); err != nil {
		t.Fatalf("HandleCheckoutCompleted: %v", err)
	}
	if repo.namings["nm_1"].PaymentStatus != domain.PaymentStatusPaid {
		t.Fatalf("naming not marked paid: %+v", repo.namings["nm_1"])
	}
	if len(fx.dispatch.ids) != 1 {
		t.Fatalf("dispatched = %v", fx.dispatch.ids)
	}
}

func TestHandleCheckoutCompletedReplayDoesNotRedispatch(t *testing.T) {
	naming := pendingNaming("nm_1")
	naming.PaymentStatus = domain.PaymentStatusPaid
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(naming)
	})

	if err := fx.service.HandleCheckoutCompleted(context.Background(), "cs_1", "nm_1"); err != nil {
		t.Fatalf("HandleCheckoutCompleted: %v", err)
	}
	if len(fx.dispatch.ids) != 0 {
		t.Fatalf("replay dispatched generation: %v", fx.dispatch.ids)
	}
}

func TestVerifyBySessionOutcomes(t *testing.T) {
	cases := []struct {
		name       string
		naming     func() domain.Naming
		status     payments.SessionStatus
		wantStatus VerifyBySessionStatus
		wantErr    error
	}{
		{
			name: "generation already completed",
			naming: func() domain.Naming {
				n := pendingNaming("nm_1")
				n.GenerationStatus = domain.GenerationStatusCompleted
				return n
			},
			wantStatus: VerifyBySessionCompleted,
		},
		{
			name:    "session not paid",
			naming:  func() domain.Naming { return pendingNaming("nm_1") },
			status:  payments.SessionStatus{Paid: false},
			wantErr: ErrPaymentNotCompleted,
		},
		{
			name:       "paid session runs generation",
			naming:     func() domain.Naming { return pendingNaming("nm_1") },
			status:     payments.SessionStatus{Paid: true, NamingID: "nm_1"},
			wantStatus: VerifyBySessionStarted,
		},
		{
			name: "generation in flight",
			naming: func() domain.Naming {
				n := pendingNaming("nm_1")
				n.PaymentStatus = domain.PaymentStatusPaid
				n.GenerationStatus = domain.GenerationStatusGenerating
				return n
			},
			wantStatus: VerifyBySessionGenerating,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
				deps.Namings = newStubNamingRepo(tc.naming())
			})
			fx.checkout.status = tc.status

			outcome, err := fx.service.VerifyBySession(context.Background(), VerifyBySessionCommand{NamingID: "nm_1", SessionID: "cs_1"})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyBySession: %v", err)
			}
			if outcome.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q", outcome.Status, tc.wantStatus)
			}
		})
	}
}

func TestVerifyBySessionRejectsForeignSession(t *testing.T) {
	fx := newPaymentServiceFixture(t, func(deps *PaymentServiceDeps) {
		deps.Namings = newStubNamingRepo(pendingNaming("nm_1"))
	})
	fx.checkout.status = payments.SessionStatus{Paid: true, NamingID: "nm_other"}

	if _, err := fx.service.VerifyBySession(context.Background(), VerifyBySessionCommand{NamingID: "nm_1", SessionID: "cs_1"}); !errors.Is(err, ErrPaymentInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}
