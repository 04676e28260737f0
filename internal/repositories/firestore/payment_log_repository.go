package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/jakmyungso/api/internal/domain"
	pfirestore "github.com/jakmyungso/api/internal/platform/firestore"
	"github.com/jakmyungso/api/internal/repositories"
)

const paymentLogsCollection = "paymentLogs"

// PaymentLogRepository stores the append-only payment verification audit trail.
type PaymentLogRepository struct {
	base *pfirestore.BaseRepository[domain.PaymentLogEntry]
}

// NewPaymentLogRepository constructs a Firestore-backed payment log repository.
func NewPaymentLogRepository(provider *pfirestore.Provider) (*PaymentLogRepository, error) {
	if provider == nil {
		return nil, errors.New("payment log repository: firestore provider is required")
	}

	encoder := func(ctx context.Context, value domain.PaymentLogEntry) (any, error) {
		return encodePaymentLogDocument(value), nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.PaymentLogEntry, error) {
		var doc paymentLogDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.PaymentLogEntry{}, err
		}
		doc.ID = snap.Ref.ID
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = snap.CreateTime
		}
		return decodePaymentLogDocument(doc), nil
	}

	base := pfirestore.NewBaseRepository[domain.PaymentLogEntry](provider, paymentLogsCollection, encoder, decoder)
	return &PaymentLogRepository{base: base}, nil
}

// Append stores a new log entry. Entries are never updated afterwards.
func (r *PaymentLogRepository) Append(ctx context.Context, entry domain.PaymentLogEntry) error {
	if r == nil || r.base == nil {
		return errors.New("payment log repository not initialised")
	}
	entry.ID = strings.TrimSpace(entry.ID)
	if entry.ID == "" {
		return errors.New("payment log repository: id is required")
	}

	docRef, err := r.base.DocumentRef(ctx, entry.ID)
	if err != nil {
		return err
	}
	if _, err := docRef.Create(ctx, encodePaymentLogDocument(entry)); err != nil {
		return pfirestore.WrapError("payment_logs.append", err)
	}
	return nil
}

// ListByNaming returns log entries for a naming, newest first.
func (r *PaymentLogRepository) ListByNaming(ctx context.Context, namingID string, pager domain.Pagination) (domain.CursorPage[domain.PaymentLogEntry], error) {
	if r == nil || r.base == nil {
		return domain.CursorPage[domain.PaymentLogEntry]{}, errors.New("payment log repository not initialised")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return domain.CursorPage[domain.PaymentLogEntry]{}, errors.New("payment log repository: naming id is required")
	}

	limit := pager.PageSize
	if limit < 0 {
		limit = 0
	}
	fetchLimit := limit
	if limit > 0 {
		fetchLimit = limit + 1
	}

	var startAfter []any
	if token := strings.TrimSpace(pager.PageToken); token != "" {
		tokenTime, tokenID, err := decodeNamingListToken(token)
		if err != nil {
			return domain.CursorPage[domain.PaymentLogEntry]{}, fmt.Errorf("payment log repository: invalid page token: %w", err)
		}
		startAfter = []any{tokenTime, tokenID}
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		q = q.Where("namingId", "==", namingID).
			OrderBy("createdAt", firestore.Desc).
			OrderBy(firestore.DocumentID, firestore.Desc)
		if len(startAfter) == 2 {
			q = q.StartAfter(startAfter...)
		}
		if fetchLimit > 0 {
			q = q.Limit(fetchLimit)
		}
		return q
	})
	if err != nil {
		return domain.CursorPage[domain.PaymentLogEntry]{}, err
	}

	nextToken := ""
	if limit > 0 && len(docs) == fetchLimit {
		last := docs[len(docs)-1]
		tokenTime := last.Data.CreatedAt
		if tokenTime.IsZero() {
			tokenTime = last.CreateTime
		}
		nextToken = encodeNamingListToken(tokenTime, last.ID)
		docs = docs[:len(docs)-1]
	}

	items := make([]domain.PaymentLogEntry, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Data)
	}
	return domain.CursorPage[domain.PaymentLogEntry]{
		Items:         items,
		NextPageToken: nextToken,
	}, nil
}

// FindPaidNamingIDByOrderID returns the naming id of a recorded successful
// verification for the given order id.
func (r *PaymentLogRepository) FindPaidNamingIDByOrderID(ctx context.Context, orderID string) (string, error) {
	if r == nil || r.base == nil {
		return "", errors.New("payment log repository not initialised")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", errors.New("payment log repository: order id is required")
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("orderId", "==", orderID).
			Where("result", "==", string(domain.PaymentLogSuccess)).
			Limit(1)
	})
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", pfirestore.WrapError("payment_logs.by_order", status.Error(codes.NotFound, "payment log not found"))
	}
	return docs[0].Data.NamingID, nil
}

// LatestOrderIDByNaming returns the most recent non-empty order id logged
// for the naming.
func (r *PaymentLogRepository) LatestOrderIDByNaming(ctx context.Context, namingID string) (string, error) {
	if r == nil || r.base == nil {
		return "", errors.New("payment log repository not initialised")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return "", errors.New("payment log repository: naming id is required")
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("namingId", "==", namingID).
			Where("hasOrderId", "==", true).
			OrderBy("createdAt", firestore.Desc).
			Limit(1)
	})
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", pfirestore.WrapError("payment_logs.latest_order", status.Error(codes.NotFound, "payment log not found"))
	}
	return docs[0].Data.OrderID, nil
}

func encodePaymentLogDocument(entry domain.PaymentLogEntry) paymentLogDocument {
	orderID := strings.TrimSpace(entry.OrderID)
	return paymentLogDocument{
		NamingID:       strings.TrimSpace(entry.NamingID),
		OrderID:        orderID,
		HasOrderID:     orderID != "",
		Result:         string(entry.Result),
		Phase:          string(entry.Phase),
		HTTPStatus:     entry.HTTPStatus,
		ProviderStatus: entry.ProviderStatus,
		ProviderCode:   entry.ProviderCode,
		Message:        entry.Message,
		Details:        entry.Details,
		RawResponse:    entry.RawResponse,
		RequestID:      entry.RequestID,
		CreatedAt:      entry.CreatedAt.UTC(),
	}
}

func decodePaymentLogDocument(doc paymentLogDocument) domain.PaymentLogEntry {
	return domain.PaymentLogEntry{
		ID:             doc.ID,
		NamingID:       doc.NamingID,
		OrderID:        doc.OrderID,
		Result:         domain.PaymentLogResult(doc.Result),
		Phase:          domain.PaymentPhase(doc.Phase),
		HTTPStatus:     doc.HTTPStatus,
		ProviderStatus: doc.ProviderStatus,
		ProviderCode:   doc.ProviderCode,
		Message:        doc.Message,
		Details:        doc.Details,
		RawResponse:    doc.RawResponse,
		RequestID:      doc.RequestID,
		CreatedAt:      doc.CreatedAt.UTC(),
	}
}

type paymentLogDocument struct {
	ID             string    `firestore:"-"`
	NamingID       string    `firestore:"namingId"`
	OrderID        string    `firestore:"orderId,omitempty"`
	HasOrderID     bool      `firestore:"hasOrderId"`
	Result         string    `firestore:"result"`
	Phase          string    `firestore:"phase"`
	HTTPStatus     int       `firestore:"httpStatus,omitempty"`
	ProviderStatus string    `firestore:"providerStatus,omitempty"`
	ProviderCode   string    `firestore:"providerCode,omitempty"`
	Message        string    `firestore:"message,omitempty"`
	Details        string    `firestore:"details,omitempty"`
	RawResponse    string    `firestore:"rawResponse,omitempty"`
	RequestID      string    `firestore:"requestId,omitempty"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

var _ repositories.PaymentLogRepository = (*PaymentLogRepository)(nil)
