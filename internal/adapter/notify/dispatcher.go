// Package notify turns order events into customer notifications.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"go.uber.org/zap"
)

const (
	maxAttempts = 3
	retryAfter  = 2 * time.Second
)

type Dispatcher struct {
	logger    *zap.Logger
	events    port.EventConsumer
	customers port.CustomerDirectory
	notifier  port.Notifier
	// retryAfter scales linearly with the attempt number.
	retryAfter time.Duration
}

func NewDispatcher(events port.EventConsumer, customers port.CustomerDirectory, notifier port.Notifier,
	log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger:     log,
		events:     events,
		customers:  customers,
		notifier:   notifier,
		retryAfter: retryAfter,
	}
}

// Run starts the workers and blocks until ctx is done and all of them exit.
func (d *Dispatcher) Run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	events := d.events.Consume(ctx)

	wg := sync.WaitGroup{}
	for i := range workers {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for event := range events {
				d.logger.Debug("Start processing event",
					zap.Int("worker", worker),
					zap.String("kind", string(event.Kind)),
					zap.String("order", event.OrderID.String()))
				d.process(ctx, event)
			}
			d.logger.Debug("Finished worker", zap.Int("worker", worker))
		}(i)
	}
	wg.Wait()
}

func (d *Dispatcher) process(ctx context.Context, event domain.OrderEvent) {
	if event.Kind != domain.EventOrderConfirmed {
		d.logger.Warn("Unknown event kind", zap.String("kind", string(event.Kind)))
		return
	}

	customer, err := d.customers.GetCustomer(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			d.logger.Warn("No recipient for confirmation",
				zap.String("order", event.OrderID.String()),
				zap.String("customer", event.CustomerID.String()))
			return
		}
		d.logger.Error("Resolve recipient", zap.String("order", event.OrderID.String()), zap.Error(err))
		return
	}

	params := map[string]string{
		"name":     customer.Name,
		"order_id": event.OrderID.String(),
		"total":    event.TotalAmount.String(),
		"currency": event.Currency,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = d.notifier.Notify(ctx, customer, domain.TemplateOrderConfirmation, params)
		if err == nil {
			return
		}
		d.logger.Warn("Notification failed",
			zap.String("order", event.OrderID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == maxAttempts {
			break
		}

		r := time.NewTimer(time.Duration(attempt) * d.retryAfter)
		select {
		case <-r.C:
		case <-ctx.Done():
			r.Stop()
			return
		}
	}
	d.logger.Error("Notification abandoned", zap.String("order", event.OrderID.String()))
}
