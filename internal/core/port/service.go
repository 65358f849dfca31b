package port

import (
	"context"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	// Cart
	GetCartSnapshot(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error)
	AddToCart(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*domain.Cart, error)
	UpdateCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error
	ClearCart(ctx context.Context, customerID uuid.UUID) error

	// Checkout
	CreateOrderIntent(ctx context.Context, customerID uuid.UUID, address domain.ShippingAddress) (*domain.OrderIntent, error)
	VerifyPayment(ctx context.Context, customerID uuid.UUID, v domain.PaymentVerification) (*domain.Order, error)

	// Orders
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) (*domain.OrderPage, error)
	ListOrders(ctx context.Context, page, limit int) (*domain.OrderPage, error)
	ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, status domain.OrderStatus, page, limit int) (*domain.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
}

type OrderExpirer interface {
	ExpirePendingOrders(ctx context.Context, createdBefore time.Time) (int, error)
}
