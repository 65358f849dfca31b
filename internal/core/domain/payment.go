package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	CustomerID       uuid.UUID
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Amount           decimal.Decimal
	Currency         string
	Status           PaymentStatus
	CreatedAt        time.Time
}

type PaymentVerification struct {
	OrderID          uuid.UUID
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type GatewayOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}
