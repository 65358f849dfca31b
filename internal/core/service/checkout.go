package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// CreateOrderIntent turns the cart into a pending order backed by a gateway
// order. The gateway order is created first; a local order never exists
// without one.
func (s *Service) CreateOrderIntent(ctx context.Context, customerID uuid.UUID,
	address domain.ShippingAddress) (*domain.OrderIntent, error) {
	err := address.Normalize()
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCartSnapshot(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// availability first, then stock, each across the whole cart
	for _, line := range cart.Items {
		if line.Product == nil {
			return nil, &domain.ProductError{ProductID: line.ProductID, Err: domain.ErrProductNotFound}
		}
		if !line.Product.IsActive {
			return nil, &domain.ProductError{ProductID: line.ProductID, Name: line.Product.Name,
				Err: domain.ErrProductUnavailable}
		}
	}
	for _, line := range cart.Items {
		if line.Quantity > line.Product.Stock {
			return nil, &domain.ProductError{ProductID: line.ProductID, Name: line.Product.Name,
				Available: line.Product.Stock, Err: domain.ErrInsufficientStock}
		}
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	total := decimal.Zero
	for _, line := range cart.Items {
		price := line.Product.EffectivePrice()
		lineTotal, err := domain.LineTotal(price, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			SellerID:  line.Product.SellerID,
			Quantity:  line.Quantity,
			Price:     price,
		})
	}

	amount, err := domain.Subunits(total)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}
	commission, err := domain.Commission(total)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}

	orderID := uuid.New()
	receipt := orderID.String()
	gwOrder, err := s.gateway.CreateOrder(ctx, domain.GatewayOrderRequest{
		Amount:   amount,
		Currency: s.settings.Currency,
		Receipt:  receipt,
	})
	if err != nil {
		s.logger.Error("Create gateway order", zap.String("receipt", receipt), zap.Error(err))
		if !errors.Is(err, domain.ErrGateway) {
			err = fmt.Errorf("%w: %w", domain.ErrGateway, err)
		}
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		ID:               orderID,
		CustomerID:       customerID,
		Items:            items,
		ShippingAddress:  address,
		TotalAmount:      total,
		CommissionAmount: commission,
		Currency:         s.settings.Currency,
		GatewayOrderID:   gwOrder.ID,
		Status:           domain.OrderStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		// the gateway order stays unpaid; reconciliation finds it by receipt
		s.logger.Warn("Orphaned gateway order",
			zap.String("gateway_order", gwOrder.ID),
			zap.String("receipt", receipt),
			zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Debug("Order intent created",
		zap.String("order", orderID.String()),
		zap.String("gateway_order", gwOrder.ID),
		zap.Int64("amount", gwOrder.Amount))

	return &domain.OrderIntent{
		OrderID:        orderID,
		GatewayOrderID: gwOrder.ID,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		Key:            s.gateway.KeyID(),
	}, nil
}
