package port

import (
	"context"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Customer
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)

	// Product
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)

	// Cart
	GetCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error)
	UpsertCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error
	UpdateCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error
	RemoveCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error
	ClearCart(ctx context.Context, customerID uuid.UUID) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*domain.Order, int, error)
	ListOrders(ctx context.Context, offset, limit int) ([]*domain.Order, int, error)
	// ListOrdersBySeller matches orders holding at least one of the seller's
	// items; an empty status matches every status.
	ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, status domain.OrderStatus, offset, limit int) ([]*domain.Order, int, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, createdBefore time.Time) ([]*domain.Order, error)

	// Settlement
	ConfirmOrder(ctx context.Context, orderID uuid.UUID, confirmFn ConfirmOrderFn) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn UpdateOrderFn) (*domain.Order, error)
}

// ConfirmOrderFn runs against the locked order and returns the payment to record.
// Storage then deducts stock for every item, saves the order and clears the
// customer's cart in the same transaction.
type ConfirmOrderFn func(order *domain.Order) (*domain.Payment, error)

// UpdateOrderFn runs against the locked order; the returned movement is
// applied to stock before the order is saved.
type UpdateOrderFn func(order *domain.Order) (domain.StockMovement, error)
