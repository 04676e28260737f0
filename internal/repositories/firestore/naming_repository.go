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
	"github.com/jakmyungso/api/internal/platform/pagination"
	"github.com/jakmyungso/api/internal/repositories"
)

const namingsCollection = "namings"

// NamingRepository persists naming requests and their generated results.
type NamingRepository struct {
	provider *pfirestore.Provider
	base     *pfirestore.BaseRepository[domain.Naming]
}

// NewNamingRepository constructs a Firestore-backed naming repository.
func NewNamingRepository(provider *pfirestore.Provider) (*NamingRepository, error) {
	if provider == nil {
		return nil, errors.New("naming repository: firestore provider is required")
	}

	encoder := func(ctx context.Context, value domain.Naming) (any, error) {
		return encodeNamingDocument(value), nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.Naming, error) {
		return decodeNamingSnapshot(snap)
	}

	base := pfirestore.NewBaseRepository[domain.Naming](provider, namingsCollection, encoder, decoder)
	return &NamingRepository{provider: provider, base: base}, nil
}

// Insert stores a new naming document.
func (r *NamingRepository) Insert(ctx context.Context, naming domain.Naming) error {
	if r == nil || r.base == nil {
		return errors.New("naming repository not initialised")
	}
	naming.ID = strings.TrimSpace(naming.ID)
	if naming.ID == "" {
		return errors.New("naming repository: id is required")
	}

	docRef, err := r.base.DocumentRef(ctx, naming.ID)
	if err != nil {
		return err
	}
	if _, err := docRef.Create(ctx, encodeNamingDocument(naming)); err != nil {
		return pfirestore.WrapError("namings.insert", err)
	}
	return nil
}

// FindByID loads a naming by its identifier.
func (r *NamingRepository) FindByID(ctx context.Context, namingID string) (domain.Naming, error) {
	if r == nil || r.base == nil {
		return domain.Naming{}, errors.New("naming repository not initialised")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return domain.Naming{}, errors.New("naming repository: id is required")
	}
	doc, err := r.base.Get(ctx, namingID)
	if err != nil {
		return domain.Naming{}, err
	}
	return doc.Data, nil
}

// FindByStripeSession loads the naming created for a checkout session.
func (r *NamingRepository) FindByStripeSession(ctx context.Context, sessionID string) (domain.Naming, error) {
	if r == nil || r.base == nil {
		return domain.Naming{}, errors.New("naming repository not initialised")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.Naming{}, errors.New("naming repository: session id is required")
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("stripeSessionId", "==", sessionID).Limit(1)
	})
	if err != nil {
		return domain.Naming{}, err
	}
	if len(docs) == 0 {
		return domain.Naming{}, pfirestore.WrapError("namings.by_session", status.Error(codes.NotFound, "naming not found"))
	}
	return docs[0].Data, nil
}

// ListByUser returns the user's namings, newest first.
func (r *NamingRepository) ListByUser(ctx context.Context, userID string, pager domain.Pagination) (domain.CursorPage[domain.Naming], error) {
	if r == nil || r.base == nil {
		return domain.CursorPage[domain.Naming]{}, errors.New("naming repository not initialised")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.CursorPage[domain.Naming]{}, errors.New("naming repository: user id is required")
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
			return domain.CursorPage[domain.Naming]{}, fmt.Errorf("naming repository: invalid page token: %w", err)
		}
		startAfter = []any{tokenTime, tokenID}
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		q = q.Where("userId", "==", userID).
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
		return domain.CursorPage[domain.Naming]{}, err
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

	items := make([]domain.Naming, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Data)
	}
	return domain.CursorPage[domain.Naming]{
		Items:         items,
		NextPageToken: nextToken,
	}, nil
}

// AttachStripeSession records the checkout session id on a naming.
func (r *NamingRepository) AttachStripeSession(ctx context.Context, namingID string, sessionID string, updatedAt time.Time) error {
	if r == nil || r.base == nil {
		return errors.New("naming repository not initialised")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("naming repository: session id is required")
	}
	_, err := r.base.Update(ctx, strings.TrimSpace(namingID), []firestore.Update{
		{Path: "stripeSessionId", Value: sessionID},
		{Path: "updatedAt", Value: updatedAt.UTC()},
	})
	return err
}

// MarkPaid applies the one-way pending→paid transition inside a transaction.
// Replays against an already-paid naming leave the document untouched.
func (r *NamingRepository) MarkPaid(ctx context.Context, namingID string, update repositories.PaidUpdate) (repositories.MarkPaidResult, error) {
	if r == nil || r.provider == nil {
		return repositories.MarkPaidResult{}, errors.New("naming repository not initialised")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return repositories.MarkPaidResult{}, errors.New("naming repository: id is required")
	}

	var result repositories.MarkPaidResult
	err := r.provider.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref, err := r.base.DocumentRef(ctx, namingID)
		if err != nil {
			return err
		}
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		naming, err := decodeNamingSnapshot(snap)
		if err != nil {
			return fmt.Errorf("namings decode %s: %w", namingID, err)
		}

		if naming.PaymentStatus == domain.PaymentStatusPaid {
			result = repositories.MarkPaidResult{AlreadyPaid: true, Naming: naming}
			return nil
		}

		paidAt := update.PaidAt.UTC()
		updates := []firestore.Update{
			{Path: "paymentStatus", Value: string(domain.PaymentStatusPaid)},
			{Path: "paidAt", Value: paidAt},
			{Path: "updatedAt", Value: paidAt},
		}
		if orderID := strings.TrimSpace(update.OrderID); orderID != "" {
			updates = append(updates, firestore.Update{Path: "orderId", Value: orderID})
			naming.OrderID = orderID
		}
		if sessionID := strings.TrimSpace(update.StripeSessionID); sessionID != "" {
			updates = append(updates, firestore.Update{Path: "stripeSessionId", Value: sessionID})
			naming.StripeSessionID = sessionID
		}
		if err := tx.Update(ref, updates); err != nil {
			return err
		}

		naming.PaymentStatus = domain.PaymentStatusPaid
		naming.PaidAt = &paidAt
		naming.UpdatedAt = paidAt
		result = repositories.MarkPaidResult{Naming: naming}
		return nil
	})
	if err != nil {
		return repositories.MarkPaidResult{}, pfirestore.WrapError("namings.mark_paid", err)
	}
	return result, nil
}

// UpdateGenerationStatus moves the generation lifecycle state.
func (r *NamingRepository) UpdateGenerationStatus(ctx context.Context, namingID string, genStatus domain.GenerationStatus, updatedAt time.Time) error {
	if r == nil || r.base == nil {
		return errors.New("naming repository not initialised")
	}
	_, err := r.base.Update(ctx, strings.TrimSpace(namingID), []firestore.Update{
		{Path: "generationStatus", Value: string(genStatus)},
		{Path: "updatedAt", Value: updatedAt.UTC()},
	})
	return err
}

// SaveResult stores the composed result and marks generation completed.
func (r *NamingRepository) SaveResult(ctx context.Context, namingID string, result domain.NamingResult, rawRef string, updatedAt time.Time) error {
	if r == nil || r.base == nil {
		return errors.New("naming repository not initialised")
	}
	updates := []firestore.Update{
		{Path: "result", Value: encodeNamingResultDocument(result)},
		{Path: "generationStatus", Value: string(domain.GenerationStatusCompleted)},
		{Path: "updatedAt", Value: updatedAt.UTC()},
	}
	if rawRef = strings.TrimSpace(rawRef); rawRef != "" {
		updates = append(updates, firestore.Update{Path: "rawResponseRef", Value: rawRef})
	}
	_, err := r.base.Update(ctx, strings.TrimSpace(namingID), updates)
	return err
}

func decodeNamingSnapshot(snap *firestore.DocumentSnapshot) (domain.Naming, error) {
	var doc namingDocument
	if err := snap.DataTo(&doc); err != nil {
		return domain.Naming{}, err
	}
	doc.ID = snap.Ref.ID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = snap.CreateTime
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = snap.UpdateTime
	}
	return decodeNamingDocument(doc), nil
}

func encodeNamingDocument(naming domain.Naming) namingDocument {
	doc := namingDocument{
		UserID:           strings.TrimSpace(naming.UserID),
		LastName:         strings.TrimSpace(naming.LastName),
		Gender:           string(naming.Gender),
		Keywords:         strings.TrimSpace(naming.Keywords),
		PaymentStatus:    string(naming.PaymentStatus),
		GenerationStatus: string(naming.GenerationStatus),
		OrderID:          strings.TrimSpace(naming.OrderID),
		StripeSessionID:  strings.TrimSpace(naming.StripeSessionID),
		PaidAt:           cloneTime(naming.PaidAt),
		RawResponseRef:   strings.TrimSpace(naming.RawResponseRef),
		ViewCount:        naming.ViewCount,
		CreatedAt:        naming.CreatedAt.UTC(),
		UpdatedAt:        naming.UpdatedAt.UTC(),
	}
	if naming.Birth != nil {
		doc.Birth = &birthDocument{
			Year:      naming.Birth.Year,
			Month:     naming.Birth.Month,
			Day:       naming.Birth.Day,
			Hour:      naming.Birth.Hour,
			Minute:    naming.Birth.Minute,
			HourKnown: naming.Birth.HourKnown,
		}
	}
	if naming.Result != nil {
		encoded := encodeNamingResultDocument(*naming.Result)
		doc.Result = &encoded
	}
	return doc
}

func decodeNamingDocument(doc namingDocument) domain.Naming {
	naming := domain.Naming{
		ID:               doc.ID,
		UserID:           doc.UserID,
		LastName:         doc.LastName,
		Gender:           domain.Gender(doc.Gender),
		Keywords:         doc.Keywords,
		PaymentStatus:    domain.PaymentStatus(doc.PaymentStatus),
		GenerationStatus: domain.GenerationStatus(doc.GenerationStatus),
		OrderID:          doc.OrderID,
		StripeSessionID:  doc.StripeSessionID,
		PaidAt:           cloneTime(doc.PaidAt),
		RawResponseRef:   doc.RawResponseRef,
		ViewCount:        doc.ViewCount,
		CreatedAt:        doc.CreatedAt.UTC(),
		UpdatedAt:        doc.UpdatedAt.UTC(),
	}
	if doc.Birth != nil {
		naming.Birth = &domain.BirthInfo{
			Year:      doc.Birth.Year,
			Month:     doc.Birth.Month,
			Day:       doc.Birth.Day,
			Hour:      doc.Birth.Hour,
			Minute:    doc.Birth.Minute,
			HourKnown: doc.Birth.HourKnown,
		}
	}
	if doc.Result != nil {
		decoded := decodeNamingResultDocument(*doc.Result)
		naming.Result = &decoded
	}
	return naming
}

func encodeNamingResultDocument(result domain.NamingResult) namingResultDocument {
	names := make([]nameCandidateDocument, 0, len(result.Names))
	for _, cand := range result.Names {
		names = append(names, encodeCandidateDocument(cand))
	}
	return namingResultDocument{
		Names:       names,
		Philosophy:  result.Philosophy,
		Avoidance:   result.Avoidance,
		GeneratedAt: result.GeneratedAt.UTC(),
	}
}

func decodeNamingResultDocument(doc namingResultDocument) domain.NamingResult {
	names := make([]domain.NameCandidate, 0, len(doc.Names))
	for _, cand := range doc.Names {
		names = append(names, decodeCandidateDocument(cand))
	}
	return domain.NamingResult{
		Names:       names,
		Philosophy:  doc.Philosophy,
		Avoidance:   doc.Avoidance,
		GeneratedAt: doc.GeneratedAt.UTC(),
	}
}

func encodeCandidateDocument(cand domain.NameCandidate) nameCandidateDocument {
	chars := make([]hanjaCharDocument, 0, len(cand.HanjaChars))
	for _, ch := range cand.HanjaChars {
		chars = append(chars, hanjaCharDocument{
			Character: ch.Character,
			Meaning:   ch.Meaning,
			Strokes:   ch.Strokes,
			Element:   ch.Element,
		})
	}
	return nameCandidateDocument{
		KoreanName:           cand.KoreanName,
		HanjaName:            cand.HanjaName,
		HanjaChars:           chars,
		StrokeAnalysis:       encodeAnalysisDocument(cand.StrokeAnalysis),
		FiveElements:         cand.FiveElements,
		EnergyInterpretation: cand.EnergyInterpretation,
		Score:                cand.Score,
	}
}

func decodeCandidateDocument(doc nameCandidateDocument) domain.NameCandidate {
	chars := make([]domain.HanjaChar, 0, len(doc.HanjaChars))
	for _, ch := range doc.HanjaChars {
		chars = append(chars, domain.HanjaChar{
			Character: ch.Character,
			Meaning:   ch.Meaning,
			Strokes:   ch.Strokes,
			Element:   ch.Element,
		})
	}
	return domain.NameCandidate{
		KoreanName:           doc.KoreanName,
		HanjaName:            doc.HanjaName,
		HanjaChars:           chars,
		StrokeAnalysis:       decodeAnalysisDocument(doc.StrokeAnalysis),
		FiveElements:         doc.FiveElements,
		EnergyInterpretation: doc.EnergyInterpretation,
		Score:                doc.Score,
	}
}

func encodeAnalysisDocument(analysis domain.StrokeAnalysis) strokeAnalysisDocument {
	encode := func(grade domain.StrokeGrade) strokeGradeDocument {
		return strokeGradeDocument{Value: grade.Value, Description: grade.Description}
	}
	return strokeAnalysisDocument{
		CheonGyeok: encode(analysis.CheonGyeok),
		InGyeok:    encode(analysis.InGyeok),
		JiGyeok:    encode(analysis.JiGyeok),
		OeGyeok:    encode(analysis.OeGyeok),
		ChongGyeok: encode(analysis.ChongGyeok),
	}
}

func decodeAnalysisDocument(doc strokeAnalysisDocument) domain.StrokeAnalysis {
	decode := func(grade strokeGradeDocument) domain.StrokeGrade {
		return domain.StrokeGrade{Value: grade.Value, Description: grade.Description}
	}
	return domain.StrokeAnalysis{
		CheonGyeok: decode(doc.CheonGyeok),
		InGyeok:    decode(doc.InGyeok),
		JiGyeok:    decode(doc.JiGyeok),
		OeGyeok:    decode(doc.OeGyeok),
		ChongGyeok: decode(doc.ChongGyeok),
	}
}

type namingDocument struct {
	ID               string                `firestore:"-"`
	UserID           string                `firestore:"userId,omitempty"`
	LastName         string                `firestore:"lastName"`
	Gender           string                `firestore:"gender"`
	Birth            *birthDocument        `firestore:"birth,omitempty"`
	Keywords         string                `firestore:"keywords,omitempty"`
	PaymentStatus    string                `firestore:"paymentStatus"`
	GenerationStatus string                `firestore:"generationStatus"`
	OrderID          string                `firestore:"orderId,omitempty"`
	StripeSessionID  string                `firestore:"stripeSessionId,omitempty"`
	PaidAt           *time.Time            `firestore:"paidAt,omitempty"`
	Result           *namingResultDocument `firestore:"result,omitempty"`
	RawResponseRef   string                `firestore:"rawResponseRef,omitempty"`
	ViewCount        int64                 `firestore:"viewCount"`
	CreatedAt        time.Time             `firestore:"createdAt"`
	UpdatedAt        time.Time             `firestore:"updatedAt"`
}

type birthDocument struct {
	Year      int  `firestore:"year,omitempty"`
	Month     int  `firestore:"month,omitempty"`
	Day       int  `firestore:"day,omitempty"`
	Hour      int  `firestore:"hour,omitempty"`
	Minute    int  `firestore:"minute,omitempty"`
	HourKnown bool `firestore:"hourKnown"`
}

type namingResultDocument struct {
	Names       []nameCandidateDocument `firestore:"names"`
	Philosophy  string                  `firestore:"philosophy,omitempty"`
	Avoidance   string                  `firestore:"avoidance,omitempty"`
	GeneratedAt time.Time               `firestore:"generatedAt"`
}

type nameCandidateDocument struct {
	KoreanName           string                 `firestore:"koreanName"`
	HanjaName            string                 `firestore:"hanjaName"`
	HanjaChars           []hanjaCharDocument    `firestore:"hanjaChars"`
	StrokeAnalysis       strokeAnalysisDocument `firestore:"strokeAnalysis"`
	FiveElements         string                 `firestore:"fiveElements,omitempty"`
	EnergyInterpretation string                 `firestore:"energyInterpretation,omitempty"`
	Score                int                    `firestore:"score"`
}

type hanjaCharDocument struct {
	Character string `firestore:"character"`
	Meaning   string `firestore:"meaning,omitempty"`
	Strokes   int    `firestore:"strokes"`
	Element   string `firestore:"element,omitempty"`
}

type strokeGradeDocument struct {
	Value       int    `firestore:"value"`
	Description string `firestore:"description,omitempty"`
}

type strokeAnalysisDocument struct {
	CheonGyeok strokeGradeDocument `firestore:"cheongyeok"`
	InGyeok    strokeGradeDocument `firestore:"ingyeok"`
	JiGyeok    strokeGradeDocument `firestore:"jigyeok"`
	OeGyeok    strokeGradeDocument `firestore:"oegyeok"`
	ChongGyeok strokeGradeDocument `firestore:"chonggyeok"`
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	cloned := value.UTC()
	return &cloned
}

func encodeNamingListToken(createdAt time.Time, docID string) string {
	token, err := pagination.EncodeToken(pagination.Cursor{
		StartAfter: []any{createdAt.UTC().Format(time.RFC3339Nano), docID},
	})
	if err != nil {
		return ""
	}
	return token
}

func decodeNamingListToken(token string) (time.Time, string, error) {
	cursor, err := pagination.DecodeToken(token)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(cursor.StartAfter) != 2 {
		return time.Time{}, "", pagination.ErrInvalidPageToken
	}
	rawTime, _ := cursor.StartAfter[0].(string)
	docID, _ := cursor.StartAfter[1].(string)
	if docID == "" {
		return time.Time{}, "", pagination.ErrInvalidPageToken
	}
	ts, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", pagination.ErrInvalidPageToken, err)
	}
	return ts, docID, nil
}

var _ repositories.NamingRepository = (*NamingRepository)(nil)
