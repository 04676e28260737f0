package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jakmyungso/api/internal/payments"
	"github.com/jakmyungso/api/internal/platform/config"
	"github.com/jakmyungso/api/internal/repositories"
	"github.com/jakmyungso/api/internal/services"
)

// Services bundles the service-layer contracts that handlers rely upon. Concrete implementations
// are assembled via dependency injection in NewContainer.
type Services struct {
	Namings     services.NamingService
	Payments    services.PaymentService
	PaymentLogs services.PaymentLogService
	Dispatcher  services.GenerationDispatcher
	System      services.SystemService
}

// Deps carries the externally constructed collaborators the container wires
// into services. The caller owns their lifecycles.
type Deps struct {
	Registry repositories.Registry

	// Orders looks up in-app purchase order status (Toss partner API).
	Orders payments.OrderStatusClient
	// Checkout opens and retrieves Stripe checkout sessions.
	Checkout payments.CheckoutProvider

	Generation services.GenerationProvider
	Archiver   services.ResponseArchiver
	Publisher  services.GenerationJobPublisher
	Tokens     services.ShareTokenCodec

	Build  services.BuildInfo
	Clock  func() time.Time
	Logger func(ctx context.Context, event string, fields map[string]any)
}

// Container wires repositories, services, and background infrastructure for runtime use.
type Container struct {
	Config       config.Config
	Repositories repositories.Registry
	Services     Services
}

// NewContainer constructs the runtime dependencies. Production wiring provides real
// clients, while tests can supply in-memory registries and stubs.
func NewContainer(ctx context.Context, cfg config.Config, deps Deps) (*Container, error) {
	if deps.Registry == nil {
		return nil, errors.New("repositories registry is required")
	}

	svc, err := buildServices(ctx, cfg, deps)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:       cfg,
		Repositories: deps.Registry,
		Services:     svc,
	}, nil
}

// Close releases resources such as repository clients, background workers, or caches.
func (c *Container) Close(ctx context.Context) error {
	if c == nil || c.Repositories == nil {
		return nil
	}
	return c.Repositories.Close(ctx)
}

func buildServices(_ context.Context, cfg config.Config, deps Deps) (Services, error) {
	var svc Services

	reg := deps.Registry
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	namingsRepo := reg.Namings()
	if namingsRepo == nil {
		return Services{}, errors.New("naming repository is required")
	}

	if logsRepo := reg.PaymentLogs(); logsRepo != nil {
		logSvc, err := services.NewPaymentLogService(services.PaymentLogServiceDeps{
			Repository: logsRepo,
			Clock:      clock,
		})
		if err != nil {
			return Services{}, fmt.Errorf("build payment log service: %w", err)
		}
		svc.PaymentLogs = logSvc
	}

	// The naming service dispatches generation jobs, and inline dispatch
	// falls back to the naming service as generator. The reference breaks
	// that construction cycle.
	generator := &generatorRef{}

	dispatcher, err := services.NewGenerationDispatcher(services.GenerationDispatcherDeps{
		Publisher: deps.Publisher,
		Generator: generator,
		Clock:     clock,
		Logger:    deps.Logger,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build generation dispatcher: %w", err)
	}
	svc.Dispatcher = dispatcher

	namingSvc, err := services.NewNamingService(services.NamingServiceDeps{
		Namings:       namingsRepo,
		Counters:      reg.Counters(),
		Provider:      deps.Generation,
		Archiver:      deps.Archiver,
		Dispatcher:    dispatcher,
		Tokens:        deps.Tokens,
		PaymentTarget: cfg.Payments.Target,
		Clock:         clock,
		Logger:        deps.Logger,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build naming service: %w", err)
	}
	generator.target = namingSvc
	svc.Namings = namingSvc

	paymentSvc, err := services.NewPaymentService(services.PaymentServiceDeps{
		Namings:     namingsRepo,
		PaymentLogs: reg.PaymentLogs(),
		Audit:       svc.PaymentLogs,
		Orders:      deps.Orders,
		Checkout:    deps.Checkout,
		Dispatcher:  dispatcher,
		Generator:   namingSvc,
		BaseURL:     cfg.Payments.BaseURL,
		Verify: services.PaymentVerifyConfig{
			AllowMock:         cfg.Toss.AllowMock,
			Retries:           cfg.Toss.VerifyRetries,
			RetryDelay:        cfg.Toss.VerifyRetryDelay,
			ExpectedProductID: cfg.Toss.ProductID,
			ExpectedAmount:    cfg.Toss.ExpectedAmount,
		},
		Clock:  clock,
		Logger: deps.Logger,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build payment service: %w", err)
	}
	svc.Payments = paymentSvc

	if healthRepo := reg.Health(); healthRepo != nil {
		systemSvc, err := services.NewSystemService(services.SystemServiceDeps{
			HealthRepository: healthRepo,
			Clock:            clock,
			Build:            deps.Build,
		})
		if err != nil {
			return Services{}, fmt.Errorf("build system service: %w", err)
		}
		svc.System = systemSvc
	}

	return svc, nil
}

type generatorRef struct {
	target services.NamingGenerator
}

func (g *generatorRef) Generate(ctx context.Context, namingID string) error {
	if g == nil || g.target == nil {
		return errors.New("generator not initialised")
	}
	return g.target.Generate(ctx, namingID)
}
