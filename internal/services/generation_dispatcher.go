package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultInlineGenerationTimeout = 2 * time.Minute

	generationEventQueued = "generation.job.queued"
	generationEventInline = "generation.job.inline"
	generationEventError  = "generation.job.error"
)

// GenerationJobMessage is the payload delivered to background workers via Pub/Sub.
type GenerationJobMessage struct {
	NamingID string    `json:"namingId"`
	QueuedAt time.Time `json:"queuedAt"`
}

// GenerationJobPublisher publishes generation job messages to the background queue.
type GenerationJobPublisher interface {
	PublishGenerationJob(ctx context.Context, message GenerationJobMessage) (string, error)
}

// GenerationDispatcherDeps enumerates collaborators required to construct the dispatcher.
// Publisher is preferred; without one, jobs run in-process on a detached
// goroutine so single-instance deployments still work.
type GenerationDispatcherDeps struct {
	Publisher     GenerationJobPublisher
	Generator     NamingGenerator
	InlineTimeout time.Duration
	Clock         func() time.Time
	Logger        func(ctx context.Context, event string, fields map[string]any)
}

type generationDispatcher struct {
	publisher     GenerationJobPublisher
	generator     NamingGenerator
	inlineTimeout time.Duration
	clock         func() time.Time
	logger        func(context.Context, string, map[string]any)
}

// NewGenerationDispatcher wires dependencies into a GenerationDispatcher implementation.
func NewGenerationDispatcher(deps GenerationDispatcherDeps) (GenerationDispatcher, error) {
	if deps.Publisher == nil && deps.Generator == nil {
		return nil, errors.New("generation dispatcher: a publisher or a generator is required")
	}

	timeout := deps.InlineTimeout
	if timeout <= 0 {
		timeout = defaultInlineGenerationTimeout
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &generationDispatcher{
		publisher:     deps.Publisher,
		generator:     deps.Generator,
		inlineTimeout: timeout,
		clock: func() time.Time {
			return clock().UTC()
		},
		logger: logger,
	}, nil
}

// Dispatch hands a naming off for generation. With a publisher the job is
// queued; otherwise it runs on a detached goroutine with its own timeout so
// the caller's request context cannot cancel it.
func (d *generationDispatcher) Dispatch(ctx context.Context, namingID string) error {
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return fmt.Errorf("%w: naming id is required", ErrNamingInvalidInput)
	}

	if d.publisher != nil {
		message := GenerationJobMessage{
			NamingID: namingID,
			QueuedAt: d.clock(),
		}
		messageID, err := d.publisher.PublishGenerationJob(ctx, message)
		if err != nil {
			return fmt.Errorf("publish generation job: %w", err)
		}
		d.logger(ctx, generationEventQueued, map[string]any{
			"naming_id":  namingID,
			"message_id": messageID,
		})
		return nil
	}

	d.logger(ctx, generationEventInline, map[string]any{"naming_id": namingID})
	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), d.inlineTimeout)
		defer cancel()
		if err := d.generator.Generate(runCtx, namingID); err != nil {
			d.logger(runCtx, generationEventError, map[string]any{
				"naming_id": namingID,
				"error":     err.Error(),
			})
		}
	}()
	return nil
}
