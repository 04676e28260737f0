// Package jobs publishes background work to Pub/Sub.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"

	"github.com/jakmyungso/api/internal/platform/textutil"
	"github.com/jakmyungso/api/internal/services"
)

// PubSubGenerationPublisher publishes naming generation jobs to a Pub/Sub topic.
type PubSubGenerationPublisher struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubGenerationPublisher constructs a Pub/Sub backed generation job publisher.
func NewPubSubGenerationPublisher(topic *pubsub.Topic) (*PubSubGenerationPublisher, error) {
	if topic == nil {
		return nil, errors.New("pubsub generation publisher: topic is required")
	}
	return &PubSubGenerationPublisher{
		topic:   topic,
		marshal: json.Marshal,
	}, nil
}

// PublishGenerationJob enqueues a generation job message on the configured topic.
func (p *PubSubGenerationPublisher) PublishGenerationJob(ctx context.Context, message services.GenerationJobMessage) (string, error) {
	if p == nil || p.topic == nil {
		return "", errors.New("pubsub generation publisher: not initialised")
	}

	data, err := p.marshal(message)
	if err != nil {
		return "", fmt.Errorf("marshal generation job: %w", err)
	}

	attrs := textutil.NormalizeStringMap(map[string]string{
		"namingId": message.NamingID,
		"queuedAt": message.QueuedAt.UTC().Format(time.RFC3339Nano),
	})

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})

	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish generation job: %w", err)
	}
	return id, nil
}
