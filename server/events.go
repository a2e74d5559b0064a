package server

import (
	"context"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	config "github.com/inference-gateway/sam3d/server/config"
)

// EventPublisher delivers CloudEvents to an external sink
//
//go:generate counterfeiter -o mocks/fake_event_publisher.go . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event cloudevents.Event) error
}

// NewEventPublisher returns the configured publisher. Disabled events yield a
// publisher that drops everything.
func NewEventPublisher(cfg config.EventsConfig) (EventPublisher, error) {
	if !cfg.Enable {
		return NoopEventPublisher{}, nil
	}
	if cfg.SinkURL == "" {
		return nil, fmt.Errorf("EVENTS_SINK_URL is required when events are enabled")
	}
	return NewCloudEventsPublisher(cfg.SinkURL)
}

// CloudEventsPublisher sends events in binary mode over HTTP
type CloudEventsPublisher struct {
	client cloudevents.Client
	target string
}

// NewCloudEventsPublisher creates a publisher posting to target
func NewCloudEventsPublisher(target string) (*CloudEventsPublisher, error) {
	client, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudevents client: %w", err)
	}
	return &CloudEventsPublisher{client: client, target: target}, nil
}

// Publish sends the event and reports a NACK or delivery failure as an error
func (p *CloudEventsPublisher) Publish(ctx context.Context, event cloudevents.Event) error {
	result := p.client.Send(cloudevents.ContextWithTarget(ctx, p.target), event)
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("failed to publish %s event: %w", event.Type(), result)
	}
	return nil
}

// NoopEventPublisher discards events
type NoopEventPublisher struct{}

// Publish does nothing
func (NoopEventPublisher) Publish(context.Context, cloudevents.Event) error {
	return nil
}
