package port

import (
	"context"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=mock/events.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type EventConsumer interface {
	Consume(ctx context.Context) <-chan domain.OrderEvent
}

type Notifier interface {
	Notify(ctx context.Context, recipient *domain.Customer,
		template domain.NotificationTemplate, params map[string]string) error
}

type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
}
