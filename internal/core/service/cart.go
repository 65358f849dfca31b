package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetCartSnapshot returns the cart with live products. A customer without a
// cart gets ErrCartEmpty, same as an empty one.
func (s *Service) GetCartSnapshot(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCartEmpty
		}
		s.logger.Error("Get cart", zap.Error(err))
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}
	return cart, nil
}

func (s *Service) AddToCart(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, &domain.ProductError{ProductID: productID, Err: domain.ErrProductNotFound}
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, &domain.ProductError{ProductID: productID, Name: product.Name, Err: domain.ErrProductNotFound}
	}
	if product.Stock < quantity {
		return nil, &domain.ProductError{ProductID: productID, Name: product.Name,
			Available: product.Stock, Err: domain.ErrInsufficientStock}
	}

	cart, err := s.repo.GetCart(ctx, customerID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		return nil, err
	}
	if cart != nil {
		for _, item := range cart.Items {
			if item.ProductID == productID {
				quantity = min(item.Quantity+quantity, product.Stock)
				break
			}
		}
	}

	err = s.repo.UpsertCartItem(ctx, customerID, productID, quantity)
	if err != nil {
		s.logger.Error("Upsert cart item", zap.Error(err))
		return nil, err
	}

	return s.repo.GetCart(ctx, customerID)
}


// UpdateCartItem sets the exact quantity of a line already in the cart.
func (s *Service) UpdateCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, &domain.ProductError{ProductID: productID, Err: domain.ErrProductNotFound}
		}
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &domain.ProductError{ProductID: productID, Name: product.Name,
			Available: product.Stock, Err: domain.ErrInsufficientStock}
	}

	err = s.repo.UpdateCartItem(ctx, customerID, productID, quantity)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) && !errors.Is(err, domain.ErrCartItemNotFound) {
			s.logger.Error("Update cart item", zap.Error(err))
		}
		return nil, err
	}

	return s.repo.GetCart(ctx, customerID)
}

func (s *Service) RemoveFromCart(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error {
	err := s.repo.RemoveCartItem(ctx, customerID, productID)
	if errors.Is(err, domain.ErrDataNotFound) {
		return domain.ErrCartNotFound
	}
	return err
}

// ClearCart drops every line and keeps the cart itself.
func (s *Service) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	err := s.repo.ClearCart(ctx, customerID)
	if err != nil {
		s.logger.Error("Clear cart", zap.Error(err))
	}
	return err
}
