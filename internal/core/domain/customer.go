package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

type Customer struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type EventKind string

const EventOrderConfirmed EventKind = "order.confirmed"

type OrderEvent struct {
	Kind        EventKind       `json:"kind"`
	OrderID     uuid.UUID       `json:"order_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type NotificationTemplate string

const TemplateOrderConfirmation NotificationTemplate = "order_confirmation"
