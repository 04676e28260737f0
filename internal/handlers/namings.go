package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	domain "github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/platform/auth"
	"github.com/jakmyungso/api/internal/platform/httpx"
	"github.com/jakmyungso/api/internal/platform/pagination"
	"github.com/jakmyungso/api/internal/services"
)

const (
	maxNamingRequestBody  = 16 * 1024
	defaultNamingPageSize = 20
	maxNamingPageSize     = 50
)

var (
	errBodyTooLarge = errors.New("request body too large")
	errEmptyBody    = errors.New("request body is required")
)

// NamingHandlers exposes the naming lifecycle endpoints: create, gated read,
// list-mine and share links.
type NamingHandlers struct {
	authn   *auth.Authenticator
	namings services.NamingService
	limiter RateLimiter
}

// NamingHandlersOption customises NamingHandlers construction.
type NamingHandlersOption func(*NamingHandlers)

// WithNamingRateLimiter throttles naming creation per client fingerprint.
func WithNamingRateLimiter(limiter RateLimiter) NamingHandlersOption {
	return func(h *NamingHandlers) {
		h.limiter = limiter
	}
}

// NewNamingHandlers constructs naming handlers. Authentication is optional on
// the public surface; list-mine requires a signed-in user.
func NewNamingHandlers(authn *auth.Authenticator, namings services.NamingService, opts ...NamingHandlersOption) *NamingHandlers {
	h := &NamingHandlers{
		authn:   authn,
		namings: namings,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Routes wires the public /namings endpoints.
func (h *NamingHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	group := r
	if h.authn != nil {
		group = group.With(h.authn.OptionalFirebaseAuth())
	}
	group.Post("/", h.create)
	group.Get("/{namingID}", h.get)
	group.Post("/{namingID}/share", h.issueShareToken)
}

// MeRoutes wires the authenticated /me endpoints.
func (h *NamingHandlers) MeRoutes(r chi.Router) {
	if r == nil {
		return
	}
	group := r
	if h.authn != nil {
		group = group.With(h.authn.RequireFirebaseAuth())
	}
	group.Get("/namings", h.listMine)
}

// ShareRoutes wires the public share-link resolution endpoint.
func (h *NamingHandlers) ShareRoutes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/{token}", h.resolveShareToken)
}

type birthPayload struct {
	Year      int  `json:"year"`
	Month     int  `json:"month"`
	Day       int  `json:"day"`
	Hour      int  `json:"hour"`
	Minute    int  `json:"minute"`
	HourKnown bool `json:"hourKnown"`
}

type createNamingRequest struct {
	LastName string        `json:"lastName"`
	Gender   string        `json:"gender"`
	Birth    *birthPayload `json:"birth"`
	Keywords string        `json:"keywords"`
}

type strokeGradePayload struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}

type strokeAnalysisPayload struct {
	CheonGyeok strokeGradePayload `json:"cheongyeok"`
	InGyeok    strokeGradePayload `json:"ingyeok"`
	JiGyeok    strokeGradePayload `json:"jigyeok"`
	OeGyeok    strokeGradePayload `json:"oegyeok"`
	ChongGyeok strokeGradePayload `json:"chonggyeok"`
}

type hanjaCharPayload struct {
	Character string `json:"character"`
	Meaning   string `json:"meaning"`
	Strokes   int    `json:"strokes"`
	Element   string `json:"element"`
}

type candidatePayload struct {
	KoreanName           string                `json:"koreanName"`
	HanjaName            string                `json:"hanjaName"`
	HanjaChars           []hanjaCharPayload    `json:"hanjaChars"`
	StrokeAnalysis       strokeAnalysisPayload `json:"strokeAnalysis"`
	FiveElements         string                `json:"fiveElements"`
	EnergyInterpretation string                `json:"energyInterpretation"`
	Score                int                   `json:"score"`
}

type resultPayload struct {
	Names       []candidatePayload `json:"names"`
	Philosophy  string             `json:"philosophy"`
	Avoidance   string             `json:"avoidance,omitempty"`
	GeneratedAt string             `json:"generatedAt"`
}

type namingPayload struct {
	ID               string         `json:"id"`
	LastName         string         `json:"lastName"`
	Gender           string         `json:"gender"`
	Birth            *birthPayload  `json:"birth,omitempty"`
	Keywords         string         `json:"keywords,omitempty"`
	PaymentStatus    string         `json:"paymentStatus"`
	GenerationStatus string         `json:"generationStatus"`
	Locked           bool           `json:"locked"`
	ViewCount        int64          `json:"viewCount"`
	Result           *resultPayload `json:"result,omitempty"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt,omitempty"`
}

type namingListResponse struct {
	Items         []namingPayload `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

type shareTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

func (h *NamingHandlers) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.namings == nil {
		httpx.WriteError(ctx, w, httpx.NewError("naming_unavailable", "naming service unavailable", http.StatusServiceUnavailable))
		return
	}

	if h.limiter != nil && !h.limiter.Allow(clientFingerprint(r)) {
		httpx.WriteError(ctx, w, httpx.NewError("rate_limited", "too many naming requests; try again later", http.StatusTooManyRequests))
		return
	}

	body, err := readLimitedBody(r, maxNamingRequestBody)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req createNamingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	cmd := services.CreateNamingCommand{
		LastName: req.LastName,
		Gender:   domain.Gender(strings.ToLower(strings.TrimSpace(req.Gender))),
		Keywords: req.Keywords,
	}
	if identity, ok := auth.IdentityFromContext(ctx); ok && identity != nil {
		cmd.UserID = identity.UID
	}
	if req.Birth != nil {
		cmd.Birth = &domain.BirthInfo{
			Year:      req.Birth.Year,
			Month:     req.Birth.Month,
			Day:       req.Birth.Day,
			Hour:      req.Birth.Hour,
			Minute:    req.Birth.Minute,
			HourKnown: req.Birth.HourKnown,
		}
	}

	naming, err := h.namings.Create(ctx, cmd)
	if err != nil {
		h.writeNamingError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, buildNamingPayload(naming, naming.PaymentStatus == domain.PaymentStatusPending, naming.ViewCount))
}

func (h *NamingHandlers) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.namings == nil {
		httpx.WriteError(ctx, w, httpx.NewError("naming_unavailable", "naming service unavailable", http.StatusServiceUnavailable))
		return
	}

	query := services.GetNamingQuery{
		NamingID:  chi.URLParam(r, "namingID"),
		CountView: parseBoolParam(r.URL.Query().Get("countView"), true),
	}

	view, err := h.namings.Get(ctx, query)
	if err != nil {
		h.writeNamingError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, buildNamingPayload(view.Naming, view.Locked, view.ViewCount))
}

func (h *NamingHandlers) listMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.namings == nil {
		httpx.WriteError(ctx, w, httpx.NewError("naming_unavailable", "naming service unavailable", http.StatusServiceUnavailable))
		return
	}

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok || identity == nil || strings.TrimSpace(identity.UID) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("unauthenticated", "authentication required", http.StatusUnauthorized))
		return
	}

	params, err := pagination.FromRequest(r, pagination.Options{
		DefaultPageSize: defaultNamingPageSize,
		MaxPageSize:     maxNamingPageSize,
	})
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}
	pager := domain.Pagination{
		PageSize:  params.PageSize,
		PageToken: params.PageToken,
	}

	page, err := h.namings.ListMine(ctx, identity.UID, pager)
	if err != nil {
		h.writeNamingError(ctx, w, err)
		return
	}

	response := namingListResponse{
		Items:         make([]namingPayload, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, naming := range page.Items {
		response.Items = append(response.Items, buildNamingPayload(naming, false, naming.ViewCount))
	}
	writeJSONResponse(w, http.StatusOK, response)
}

func (h *NamingHandlers) issueShareToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.namings == nil {
		httpx.WriteError(ctx, w, httpx.NewError("naming_unavailable", "naming service unavailable", http.StatusServiceUnavailable))
		return
	}

	requesterID := ""
	if identity, ok := auth.IdentityFromContext(ctx); ok && identity != nil {
		requesterID = identity.UID
	}

	token, err := h.namings.IssueShareToken(ctx, chi.URLParam(r, "namingID"), requesterID)
	if err != nil {
		h.writeNamingError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, shareTokenResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *NamingHandlers) resolveShareToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.namings == nil {
		httpx.WriteError(ctx, w, httpx.NewError("naming_unavailable", "naming service unavailable", http.StatusServiceUnavailable))
		return
	}

	view, err := h.namings.ResolveShareToken(ctx, chi.URLParam(r, "token"))
	if err != nil {
		h.writeNamingError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, buildNamingPayload(view.Naming, view.Locked, view.ViewCount))
}

func (h *NamingHandlers) writeNamingError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNamingInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrNamingNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("naming_not_found", "naming not found", http.StatusNotFound))
	case errors.Is(err, services.ErrNamingUnauthorized):
		httpx.WriteError(ctx, w, httpx.NewError("forbidden", "naming belongs to another user", http.StatusForbidden))
	case errors.Is(err, services.ErrShareTokenInvalid):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_share_token", "share token is invalid or expired", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("naming_error", "failed to process naming request", http.StatusInternalServerError))
	}
}

func buildNamingPayload(naming domain.Naming, locked bool, viewCount int64) namingPayload {
	payload := namingPayload{
		ID:               naming.ID,
		LastName:         naming.LastName,
		Gender:           string(naming.Gender),
		Keywords:         naming.Keywords,
		PaymentStatus:    string(naming.PaymentStatus),
		GenerationStatus: string(naming.GenerationStatus),
		Locked:           locked,
		ViewCount:        viewCount,
		CreatedAt:        formatTimestamp(naming.CreatedAt),
		UpdatedAt:        formatTimestamp(naming.UpdatedAt),
	}
	if naming.Birth != nil {
		payload.Birth = &birthPayload{
			Year:      naming.Birth.Year,
			Month:     naming.Birth.Month,
			Day:       naming.Birth.Day,
			Hour:      naming.Birth.Hour,
			Minute:    naming.Birth.Minute,
			HourKnown: naming.Birth.HourKnown,
		}
	}
	if naming.Result != nil {
		payload.Result = buildResultPayload(*naming.Result)
	}
	return payload
}

func buildResultPayload(result domain.NamingResult) *resultPayload {
	payload := &resultPayload{
		Names:       make([]candidatePayload, 0, len(result.Names)),
		Philosophy:  result.Philosophy,
		Avoidance:   result.Avoidance,
		GeneratedAt: formatTimestamp(result.GeneratedAt),
	}
	for _, candidate := range result.Names {
		payload.Names = append(payload.Names, buildCandidatePayload(candidate))
	}
	return payload
}

func buildCandidatePayload(candidate domain.NameCandidate) candidatePayload {
	chars := make([]hanjaCharPayload, 0, len(candidate.HanjaChars))
	for _, ch := range candidate.HanjaChars {
		chars = append(chars, hanjaCharPayload{
			Character: ch.Character,
			Meaning:   ch.Meaning,
			Strokes:   ch.Strokes,
			Element:   ch.Element,
		})
	}
	return candidatePayload{
		KoreanName: candidate.KoreanName,
		HanjaName:  candidate.HanjaName,
		HanjaChars: chars,
		StrokeAnalysis: strokeAnalysisPayload{
			CheonGyeok: strokeGradePayload(candidate.StrokeAnalysis.CheonGyeok),
			InGyeok:    strokeGradePayload(candidate.StrokeAnalysis.InGyeok),
			JiGyeok:    strokeGradePayload(candidate.StrokeAnalysis.JiGyeok),
			OeGyeok:    strokeGradePayload(candidate.StrokeAnalysis.OeGyeok),
			ChongGyeok: strokeGradePayload(candidate.StrokeAnalysis.ChongGyeok),
		},
		FiveElements:         candidate.FiveElements,
		EnergyInterpretation: candidate.EnergyInterpretation,
		Score:                candidate.Score,
	}
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339Nano)
}

func parseBoolParam(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

// clientFingerprint identifies a caller for rate limiting: authenticated
// requests by uid, anonymous ones by remote address.
func clientFingerprint(r *http.Request) string {
	if identity, ok := auth.IdentityFromContext(r.Context()); ok && identity != nil && identity.UID != "" {
		return "uid:" + identity.UID
	}
	return "ip:" + strings.TrimSpace(r.RemoteAddr)
}

func readLimitedBody(r *http.Request, limit int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, errEmptyBody
	}
	if limit <= 0 {
		limit = maxNamingRequestBody
	}
	reader := io.LimitReader(r.Body, limit+1)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errEmptyBody
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func writeBodyError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBodyTooLarge):
		httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	}
}
