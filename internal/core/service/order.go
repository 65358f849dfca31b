package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
)

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func newOrderPage(list []*domain.Order, total, page, limit int) *domain.OrderPage {
	return &domain.OrderPage{
		Orders:     list,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

func (s *Service) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) (*domain.OrderPage, error) {
	page, limit = pageBounds(page, limit)
	list, total, err := s.repo.ListOrdersByCustomer(ctx, customerID, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("List orders for customer", zap.Error(err))
		return nil, err
	}
	return newOrderPage(list, total, page, limit), nil
}

func (s *Service) ListOrders(ctx context.Context, page, limit int) (*domain.OrderPage, error) {
	page, limit = pageBounds(page, limit)
	list, total, err := s.repo.ListOrders(ctx, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}
	return newOrderPage(list, total, page, limit), nil
}

// ListOrdersBySeller pages through orders carrying the seller's products,
// optionally narrowed to one status.
func (s *Service) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, status domain.OrderStatus,
	page, limit int) (*domain.OrderPage, error) {
	page, limit = pageBounds(page, limit)
	list, total, err := s.repo.ListOrdersBySeller(ctx, sellerID, status, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("List orders for seller", zap.Error(err))
		return nil, err
	}
	return newOrderPage(list, total, page, limit), nil
}

// UpdateOrderStatus applies a staff transition. Cancelling a settled order
// puts its stock back once; cancelling again changes nothing.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) (domain.StockMovement, error) {
		if status == domain.OrderStatusCancelled && o.Status == domain.OrderStatusCancelled {
			return domain.StockMovementNone, domain.ErrOrderUnchanged
		}
		// only a verified payment confirms
		if o.Status == domain.OrderStatusPending && status != domain.OrderStatusCancelled {
			return domain.StockMovementNone,
				fmt.Errorf("%w: %s order awaits payment", domain.ErrInvalidTransition, o.Status)
		}

		err := o.TransitionTo(status)
		if err != nil {
			return domain.StockMovementNone, err
		}

		if status == domain.OrderStatusCancelled && o.StockSettled {
			return domain.StockMovementRestore, nil
		}
		return domain.StockMovementNone, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			return order, nil
		}
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.String("order", order.ID.String()),
		zap.String("status", string(order.Status)))
	return order, nil
}

// ExpirePendingOrders cancels checkouts that were never paid. Their stock
// was never taken, so nothing is restored.
func (s *Service) ExpirePendingOrders(ctx context.Context, createdBefore time.Time) (int, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, domain.OrderStatusPending, createdBefore)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range list {
		_, err := s.repo.UpdateOrder(ctx, o.ID, func(o *domain.Order) (domain.StockMovement, error) {
			if o.Status != domain.OrderStatusPending {
				// paid in the meantime
				return domain.StockMovementNone, domain.ErrOrderUnchanged
			}
			return domain.StockMovementNone, o.TransitionTo(domain.OrderStatusCancelled)
		})
		if err != nil {
			if !errors.Is(err, domain.ErrOrderUnchanged) {
				s.logger.Error("Expire pending order", zap.String("order", o.ID.String()), zap.Error(err))
			}
			continue
		}

		expired++
		s.logger.Info("Pending order expired",
			zap.String("order", o.ID.String()),
			zap.String("gateway_order", o.GatewayOrderID))
	}

	return expired, nil
}
