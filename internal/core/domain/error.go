package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidShippingAddress = errors.New("shipping address is incomplete")
	ErrInvalidOrderStatus     = errors.New("invalid status")
	ErrInvalidQuantity        = errors.New("quantity must be at least 1")
	ErrGatewayOrderMismatch   = errors.New("gateway order does not belong to this order")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrCartNotFound           = errors.New("cart not found")
	ErrCartItemNotFound       = errors.New("item not in cart")
	ErrInvalidTransition      = errors.New("order status does not permit this transition")
	ErrOrderNotFound          = errors.New("order not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrProductUnavailable     = errors.New("product is no longer available")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrSignatureInvalid       = errors.New("payment verification failed: invalid signature")
	ErrGateway                = errors.New("payment gateway error")

	// ErrOrderUnchanged is returned from an order callback to commit nothing
	// and hand the stored order back as is.
	ErrOrderUnchanged = errors.New("order is already in the requested state")
)

// ProductError names the product behind a catalog or stock failure.
type ProductError struct {
	ProductID uuid.UUID
	Name      string
	Available int
	Err       error
}

func (e *ProductError) Error() string {
	name := e.Name
	if name == "" {
		name = e.ProductID.String()
	}
	if errors.Is(e.Err, ErrInsufficientStock) {
		return fmt.Sprintf("insufficient stock for %s: only %d left", name, e.Available)
	}
	return fmt.Sprintf("product %s: %s", name, e.Err)
}

func (e *ProductError) Unwrap() error {
	return e.Err
}
