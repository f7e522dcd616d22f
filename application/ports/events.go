package ports

import (
	"context"

	"migration-schedules/domain/events"
)

// EventPublisher publishes domain events to interested parties
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
