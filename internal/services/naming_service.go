package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/unicode/norm"

	domain "github.com/jakmyungso/api/internal/domain"
	namegen "github.com/jakmyungso/api/internal/naming"
	"github.com/jakmyungso/api/internal/repositories"
)

const (
	eventGenerationStarted   = "naming.generation.started"
	eventGenerationCompleted = "naming.generation.completed"
	eventGenerationFailed    = "naming.generation.failed"

	// maxKeywordsLength bounds the free-text keyword field after sanitizing.
	maxKeywordsLength = 200
)

var (
	// ErrNamingInvalidInput signals the caller provided invalid arguments.
	// The wrapped message is user-facing Korean.
	ErrNamingInvalidInput = errors.New("naming: invalid input")
	// ErrNamingNotFound indicates the naming could not be located.
	ErrNamingNotFound = errors.New("naming: not found")
	// ErrNamingUnauthorized indicates the requester does not own the naming.
	ErrNamingUnauthorized = errors.New("naming: unauthorized")
	// ErrShareTokenInvalid covers expired, malformed or forged share tokens.
	ErrShareTokenInvalid = errors.New("naming: invalid share token")
)

// ShareTokenCodec issues and verifies share-link tokens. The platform
// sharetoken.Codec satisfies it.
type ShareTokenCodec interface {
	Issue(namingID string, now time.Time) (token string, expiresAt time.Time, err error)
	Parse(token string, now time.Time) (namingID string, err error)
}

// NamingServiceDeps bundles the collaborators required to construct a naming service.
type NamingServiceDeps struct {
	Namings    repositories.NamingRepository
	Counters   repositories.CounterRepository
	Provider   GenerationProvider
	Archiver   ResponseArchiver
	Dispatcher GenerationDispatcher
	Tokens     ShareTokenCodec
	// PaymentTarget selects the unlock gate: "toss", "stripe" or "" (free).
	PaymentTarget string
	Clock         func() time.Time
	IDGenerator   func() string
	Logger        func(ctx context.Context, event string, fields map[string]any)
}

type namingService struct {
	namings       repositories.NamingRepository
	counters      repositories.CounterRepository
	provider      GenerationProvider
	archiver      ResponseArchiver
	dispatcher    GenerationDispatcher
	tokens        ShareTokenCodec
	paymentTarget string
	sanitizer     *bluemonday.Policy
	clock         func() time.Time
	newID         func() string
	logger        func(context.Context, string, map[string]any)
}

// NewNamingService wires dependencies into a concrete NamingService implementation.
func NewNamingService(deps NamingServiceDeps) (NamingService, error) {
	if deps.Namings == nil {
		return nil, errors.New("naming service: naming repository is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string {
			return "nm_" + ulid.Make().String()
		}
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &namingService{
		namings:       deps.Namings,
		counters:      deps.Counters,
		provider:      deps.Provider,
		archiver:      deps.Archiver,
		dispatcher:    deps.Dispatcher,
		tokens:        deps.Tokens,
		paymentTarget: strings.TrimSpace(strings.ToLower(deps.PaymentTarget)),
		sanitizer:     bluemonday.StrictPolicy(),
		clock: func() time.Time {
			return clock().UTC()
		},
		newID:  idGen,
		logger: logger,
	}, nil
}

// Create validates and persists a new naming request. Generation is
// dispatched immediately unless the deployment collects payment through
// Stripe Checkout first.
func (s *namingService) Create(ctx context.Context, cmd CreateNamingCommand) (Naming, error) {
	now := s.clock()

	lastName := norm.NFC.String(strings.TrimSpace(cmd.LastName))
	if err := namegen.ValidateRequest(lastName, cmd.Gender, cmd.Birth, now); err != nil {
		return Naming{}, fmt.Errorf("%w: %s", ErrNamingInvalidInput, err.Error())
	}

	naming := domain.Naming{
		ID:               s.newID(),
		UserID:           strings.TrimSpace(cmd.UserID),
		LastName:         lastName,
		Gender:           cmd.Gender,
		Birth:            cloneBirth(cmd.Birth),
		Keywords:         s.sanitizeKeywords(cmd.Keywords),
		PaymentStatus:    s.initialPaymentStatus(),
		GenerationStatus: domain.GenerationStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.namings.Insert(ctx, naming); err != nil {
		return Naming{}, err
	}

	// Stripe deployments generate only after checkout completes.
	if s.paymentTarget != "stripe" && s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, naming.ID); err != nil {
			s.logger(ctx, eventGenerationDispatch, map[string]any{
				"naming_id": naming.ID,
				"error":     err.Error(),
			})
		}
	}
	return naming, nil
}

// Get loads a naming with the access gate applied. Locked results keep the
// first candidate visible and mask the rest.
func (s *namingService) Get(ctx context.Context, query GetNamingQuery) (NamingView, error) {
	namingID := strings.TrimSpace(query.NamingID)
	if namingID == "" {
		return NamingView{}, fmt.Errorf("%w: naming id is required", ErrNamingInvalidInput)
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return NamingView{}, ErrNamingNotFound
		}
		return NamingView{}, err
	}

	viewCount := naming.ViewCount
	if s.counters != nil {
		if query.CountView {
			if count, err := s.counters.Increment(ctx, viewCounterID(namingID), 1); err == nil {
				viewCount = count
			}
		} else if count, err := s.counters.Total(ctx, viewCounterID(namingID)); err == nil {
			viewCount = count
		}
	}

	return s.buildView(naming, viewCount), nil
}

// ListMine returns the requester's namings with the gate applied per item.
func (s *namingService) ListMine(ctx context.Context, userID string, pager Pagination) (domain.CursorPage[Naming], error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.CursorPage[Naming]{}, fmt.Errorf("%w: user id is required", ErrNamingInvalidInput)
	}

	page, err := s.namings.ListByUser(ctx, userID, pager)
	if err != nil {
		return domain.CursorPage[Naming]{}, err
	}
	for i, naming := range page.Items {
		page.Items[i] = s.maskNaming(naming)
	}
	return page, nil
}

// Generate runs one generation attempt end to end: mark generating, call the
// model, parse and compose, archive the raw payload, persist the result. A
// naming is never left stuck in generating.
func (s *namingService) Generate(ctx context.Context, namingID string) error {
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return fmt.Errorf("%w: naming id is required", ErrNamingInvalidInput)
	}
	if s.provider == nil {
		return errors.New("naming service: generation provider is not configured")
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return ErrNamingNotFound
		}
		return err
	}
	if naming.GenerationStatus == domain.GenerationStatusCompleted && naming.Result != nil {
		return nil
	}

	now := s.clock()
	if err := s.namings.UpdateGenerationStatus(ctx, namingID, domain.GenerationStatusGenerating, now); err != nil {
		return err
	}
	s.logger(ctx, eventGenerationStarted, map[string]any{"naming_id": namingID})

	raw, err := s.provider.Complete(ctx, namegen.SystemPrompt(), namegen.BuildUserPrompt(namegen.PromptParams{
		Surname:  naming.LastName,
		Gender:   naming.Gender,
		Birth:    naming.Birth,
		Keywords: naming.Keywords,
	}))
	if err != nil {
		s.markGenerationFailed(ctx, namingID, err)
		return fmt.Errorf("naming service: generation: %w", err)
	}

	generatedAt := s.clock()
	parsed := namegen.ParseGenerationResponse(raw, generatedAt)
	composed := namegen.Compose(namegen.ComposeParams{
		Surname:  naming.LastName,
		Gender:   naming.Gender,
		Birth:    naming.Birth,
		Keywords: naming.Keywords,
	}, parsed.Names)

	result := domain.NamingResult{
		Names:       composed,
		Philosophy:  namegen.AppendMixGuide(parsed.Philosophy),
		Avoidance:   parsed.Avoidance,
		GeneratedAt: generatedAt,
	}

	rawRef := ""
	if s.archiver != nil {
		if ref, err := s.archiver.Archive(ctx, namingID, raw); err == nil {
			rawRef = ref
		} else {
			s.logger(ctx, eventGenerationCompleted, map[string]any{
				"naming_id":     namingID,
				"archive_error": err.Error(),
			})
		}
	}

	if err := s.namings.SaveResult(ctx, namingID, result, rawRef, s.clock()); err != nil {
		s.markGenerationFailed(ctx, namingID, err)
		return err
	}
	s.logger(ctx, eventGenerationCompleted, map[string]any{
		"naming_id":  namingID,
		"candidates": len(result.Names),
	})
	return nil
}

// IssueShareToken signs a share token for a naming owned by the requester.
// Anonymous namings (no user id) can be shared by anyone holding the id.
func (s *namingService) IssueShareToken(ctx context.Context, namingID string, requesterID string) (ShareToken, error) {
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return ShareToken{}, fmt.Errorf("%w: naming id is required", ErrNamingInvalidInput)
	}
	if s.tokens == nil {
		return ShareToken{}, errors.New("naming service: share token codec is not configured")
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return ShareToken{}, ErrNamingNotFound
		}
		return ShareToken{}, err
	}
	if naming.UserID != "" && naming.UserID != strings.TrimSpace(requesterID) {
		return ShareToken{}, ErrNamingUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(namingID, s.clock())
	if err != nil {
		return ShareToken{}, err
	}
	return ShareToken{Token: token, ExpiresAt: expiresAt}, nil
}

// ResolveShareToken verifies a share token and returns the naming unlocked:
// possession of a valid token is the authorization.
func (s *namingService) ResolveShareToken(ctx context.Context, token string) (NamingView, error) {
	if s.tokens == nil {
		return NamingView{}, errors.New("naming service: share token codec is not configured")
	}
	namingID, err := s.tokens.Parse(token, s.clock())
	if err != nil {
		return NamingView{}, ErrShareTokenInvalid
	}

	naming, err := s.namings.FindByID(ctx, namingID)
	if err != nil {
		if isRepositoryNotFound(err) {
			return NamingView{}, ErrNamingNotFound
		}
		return NamingView{}, err
	}
	return NamingView{Naming: naming, Locked: false, ViewCount: naming.ViewCount}, nil
}

func (s *namingService) buildView(naming domain.Naming, viewCount int64) NamingView {
	locked := naming.RequiresUnlock(s.paymentTarget)
	masked := s.maskNaming(naming)
	masked.ViewCount = viewCount
	return NamingView{Naming: masked, Locked: locked, ViewCount: viewCount}
}

func (s *namingService) maskNaming(naming domain.Naming) domain.Naming {
	if naming.Result == nil {
		return naming
	}
	masked := namegen.MaskLockedNames(*naming.Result, naming.RequiresUnlock(s.paymentTarget))
	naming.Result = &masked
	return naming
}

func (s *namingService) markGenerationFailed(ctx context.Context, namingID string, cause error) {
	if err := s.namings.UpdateGenerationStatus(ctx, namingID, domain.GenerationStatusFailed, s.clock()); err != nil {
		s.logger(ctx, eventGenerationFailed, map[string]any{
			"naming_id":    namingID,
			"error":        cause.Error(),
			"status_error": err.Error(),
		})
		return
	}
	s.logger(ctx, eventGenerationFailed, map[string]any{
		"naming_id": namingID,
		"error":     cause.Error(),
	})
}

func (s *namingService) initialPaymentStatus() domain.PaymentStatus {
	switch s.paymentTarget {
	case "toss", "stripe":
		return domain.PaymentStatusPending
	default:
		return domain.PaymentStatusFree
	}
}

func (s *namingService) sanitizeKeywords(keywords string) string {
	cleaned := s.sanitizer.Sanitize(keywords)
	cleaned = norm.NFC.String(strings.TrimSpace(cleaned))
	runes := []rune(cleaned)
	if len(runes) > maxKeywordsLength {
		cleaned = string(runes[:maxKeywordsLength])
	}
	return cleaned
}

func cloneBirth(birth *domain.BirthInfo) *domain.BirthInfo {
	if birth == nil {
		return nil
	}
	cloned := *birth
	return &cloned
}

func viewCounterID(namingID string) string {
	return "naming_views_" + namingID
}
