package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerifyPayment authenticates a gateway callback and settles the order.
// Repeating a successful callback returns the settled order again.
func (s *Service) VerifyPayment(ctx context.Context, customerID uuid.UUID,
	v domain.PaymentVerification) (*domain.Order, error) {
	if v.GatewayOrderID == "" || v.GatewayPaymentID == "" || v.Signature == "" {
		return nil, domain.ErrBadRequest
	}

	if !utils.VerifyPaymentSignature(s.settings.GatewaySecret, v.GatewayOrderID, v.GatewayPaymentID, v.Signature) {
		s.logger.Warn("Payment signature mismatch",
			zap.String("order", v.OrderID.String()),
			zap.String("customer", customerID.String()),
			zap.String("gateway_order", v.GatewayOrderID),
			zap.String("gateway_payment", v.GatewayPaymentID))
		return nil, domain.ErrSignatureInvalid
	}

	order, err := s.repo.ConfirmOrder(ctx, v.OrderID, func(o *domain.Order) (*domain.Payment, error) {
		if o.CustomerID != customerID {
			return nil, domain.ErrForbidden
		}
		if o.GatewayOrderID != v.GatewayOrderID {
			return nil, domain.ErrGatewayOrderMismatch
		}
		if o.Status != domain.OrderStatusPending {
			if settledBy(o, v.GatewayPaymentID) {
				return nil, domain.ErrOrderUnchanged
			}
			return nil, fmt.Errorf("%w: order is %s", domain.ErrInvalidTransition, o.Status)
		}

		err := o.TransitionTo(domain.OrderStatusConfirmed)
		if err != nil {
			return nil, err
		}
		o.GatewayPaymentID = v.GatewayPaymentID

		return &domain.Payment{
			ID:               uuid.New(),
			OrderID:          o.ID,
			CustomerID:       o.CustomerID,
			GatewayOrderID:   v.GatewayOrderID,
			GatewayPaymentID: v.GatewayPaymentID,
			GatewaySignature: v.Signature,
			Amount:           o.TotalAmount,
			Currency:         o.Currency,
			Status:           domain.PaymentStatusPaid,
			CreatedAt:        s.now(),
		}, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			s.logger.Info("Duplicate payment callback",
				zap.String("order", v.OrderID.String()),
				zap.String("gateway_payment", v.GatewayPaymentID))
			return order, nil
		}
		if errors.Is(err, domain.ErrConflictingData) {
			return s.duplicatePayment(ctx, v, err)
		}
		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrInvalidTransition) {
			// the gateway holds the money; reconciliation refunds it by these ids
			s.logger.Warn("Captured payment left unsettled",
				zap.String("order", v.OrderID.String()),
				zap.String("gateway_order", v.GatewayOrderID),
				zap.String("gateway_payment", v.GatewayPaymentID),
				zap.Error(err))
		}
		return nil, err
	}

	s.publishConfirmed(ctx, order)

	return order, nil
}

// duplicatePayment resolves a unique violation on the payment record. It is a
// replay when the order already carries this payment.
func (s *Service) duplicatePayment(ctx context.Context, v domain.PaymentVerification, cause error) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, v.OrderID)
	if err != nil {
		return nil, cause
	}
	if settledBy(order, v.GatewayPaymentID) {
		return order, nil
	}
	s.logger.Warn("Payment already recorded for another order",
		zap.String("order", v.OrderID.String()),
		zap.String("gateway_payment", v.GatewayPaymentID))
	return nil, cause
}

// settledBy reports whether the order was paid with this payment and still
// holds it. A cancelled order gave its settlement back.
func settledBy(o *domain.Order, gatewayPaymentID string) bool {
	return o.Status != domain.OrderStatusPending && o.Status != domain.OrderStatusCancelled &&
		o.GatewayPaymentID == gatewayPaymentID
}

// publishConfirmed hands the event to the queue; the outcome never reaches the caller.
func (s *Service) publishConfirmed(ctx context.Context, order *domain.Order) {
	event := domain.OrderEvent{
		Kind:        domain.EventOrderConfirmed,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		OccurredAt:  s.now(),
	}

	err := s.events.Publish(context.WithoutCancel(ctx), event)
	if err != nil {
		s.logger.Warn("Publish order confirmed", zap.String("order", order.ID.String()), zap.Error(err))
	}
}
