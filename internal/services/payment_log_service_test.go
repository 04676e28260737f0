package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/jakmyungso/api/internal/domain"
)

type stubPaymentLogRepo struct {
	appended  []domain.PaymentLogEntry
	appendErr error
	listPage  domain.CursorPage[domain.PaymentLogEntry]
	listErr   error
	gotNaming string
	gotPager  domain.Pagination
}

func (s *stubPaymentLogRepo) Append(_ context.Context, entry domain.PaymentLogEntry) error {
	s.appended = append(s.appended, entry)
	return s.appendErr
}

func (s *stubPaymentLogRepo) ListByNaming(_ context.Context, namingID string, pager domain.Pagination) (domain.CursorPage[domain.PaymentLogEntry], error) {
	s.gotNaming = namingID
	s.gotPager = pager
	return s.listPage, s.listErr
}

func (s *stubPaymentLogRepo) FindPaidNamingIDByOrderID(context.Context, string) (string, error) {
	return "", nil
}

func (s *stubPaymentLogRepo) LatestOrderIDByNaming(context.Context, string) (string, error) {
	return "", nil
}

type recordingWarnLogger struct {
	messages []string
}

func (l *recordingWarnLogger) Warnf(format string, args ...any) {
	l.messages = append(l.messages, format)
}

func TestPaymentLogServiceRecord(t *testing.T) {
	repo := &stubPaymentLogRepo{}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := NewPaymentLogService(PaymentLogServiceDeps{
		Repository:  repo,
		Clock:       func() time.Time { return now },
		IDGenerator: func() string { return "plg_test" },
	})
	if err != nil {
		t.Fatalf("NewPaymentLogService returned error: %v", err)
	}

	svc.Record(context.Background(), PaymentLogRecord{
		NamingID:       "  nm_01  ",
		OrderID:        "order-1",
		Result:         domain.PaymentLogSuccess,
		Phase:          domain.PhaseVerifyPaid,
		HTTPStatus:     200,
		ProviderStatus: "COMPLETED",
		Message:        "verified",
		RequestID:      "req-1",
	})

	if len(repo.appended) != 1 {
		t.Fatalf("expected 1 appended entry, got %d", len(repo.appended))
	}
	entry := repo.appended[0]
	if entry.ID != "plg_test" {
		t.Fatalf("expected generated id, got %q", entry.ID)
	}
	if entry.NamingID != "nm_01" {
		t.Fatalf("expected trimmed naming id, got %q", entry.NamingID)
	}
	if entry.Result != domain.PaymentLogSuccess {
		t.Fatalf("expected success result, got %q", entry.Result)
	}
	if entry.Phase != domain.PhaseVerifyPaid {
		t.Fatalf("expected verify paid phase, got %q", entry.Phase)
	}
	if !entry.CreatedAt.Equal(now) {
		t.Fatalf("expected clock timestamp, got %v", entry.CreatedAt)
	}
}

func TestPaymentLogServiceRecordNormalisesResult(t *testing.T) {
	repo := &stubPaymentLogRepo{}
	svc, err := NewPaymentLogService(PaymentLogServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewPaymentLogService returned error: %v", err)
	}

	svc.Record(context.Background(), PaymentLogRecord{
		NamingID: "nm_01",
		Result:   domain.PaymentLogResult("bogus"),
	})

	if len(repo.appended) != 1 {
		t.Fatalf("expected 1 appended entry, got %d", len(repo.appended))
	}
	if repo.appended[0].Result != domain.PaymentLogInfo {
		t.Fatalf("expected unknown result coerced to info, got %q", repo.appended[0].Result)
	}
}

func TestPaymentLogServiceRecordTruncatesRawResponse(t *testing.T) {
	repo := &stubPaymentLogRepo{}
	svc, err := NewPaymentLogService(PaymentLogServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewPaymentLogService returned error: %v", err)
	}

	svc.Record(context.Background(), PaymentLogRecord{
		NamingID:    "nm_01",
		RawResponse: strings.Repeat("a", rawResponseLimit+500),
	})

	if got := len(repo.appended[0].RawResponse); got != rawResponseLimit {
		t.Fatalf("expected raw response capped at %d, got %d", rawResponseLimit, got)
	}
}

func TestPaymentLogServiceRecordSwallowsAppendError(t *testing.T) {
	logger := &recordingWarnLogger{}
	repo := &stubPaymentLogRepo{appendErr: errors.New("firestore down")}
	svc, err := NewPaymentLogService(PaymentLogServiceDeps{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("NewPaymentLogService returned error: %v", err)
	}

	svc.Record(context.Background(), PaymentLogRecord{NamingID: "nm_01"})

	if len(logger.messages) != 1 {
		t.Fatalf("expected append failure to be logged, got %d messages", len(logger.messages))
	}
}

func TestPaymentLogServiceList(t *testing.T) {
	repo := &stubPaymentLogRepo{
		listPage: domain.CursorPage[domain.PaymentLogEntry]{
			Items:         []domain.PaymentLogEntry{{ID: "plg_1", NamingID: "nm_01"}},
			NextPageToken: "next",
		},
	}
	svc, err := NewPaymentLogService(PaymentLogServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewPaymentLogService returned error: %v", err)
	}

	page, err := svc.List(context.Background(), "  nm_01 ", Pagination{PageSize: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.gotNaming != "nm_01" {
		t.Fatalf("expected trimmed naming id, got %q", repo.gotNaming)
	}
	if repo.gotPager.PageSize != 10 {
		t.Fatalf("expected page size forwarded, got %d", repo.gotPager.PageSize)
	}
	if len(page.Items) != 1 || page.NextPageToken != "next" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestPaymentLogServiceRequiresRepository(t *testing.T) {
	if _, err := NewPaymentLogService(PaymentLogServiceDeps{}); err == nil {
		t.Fatal("expected error when repository is missing")
	}
}
