// Package logpublisher writes domain events to the service log. It is the default
// publisher when no broker is configured.
package logpublisher

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "EventPublisher")}
}

func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	p.logger.InfoContext(ctx, "Domain event emitted",
		slog.Group("event",
			"id", e.ID.String(),
			"type", e.Type.String(),
			"timestamp", e.Timestamp,
			"data", e.Payload,
		),
	)
	return nil
}

func (p *Publisher) Close() error {
	return nil
}
