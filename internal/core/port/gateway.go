package port

import (
	"context"

	"github.com/MikeRez0/shopx/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req domain.GatewayOrderRequest) (*domain.GatewayOrder, error)
	// KeyID is the public key handed to checkout clients.
	KeyID() string
}
