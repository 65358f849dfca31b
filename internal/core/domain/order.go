package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// fulfillment order; cancelled sits outside it
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusRank[status]; ok || status == OrderStatusCancelled {
		return status, nil
	}
	return "", ErrInvalidOrderStatus
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a forward move from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	return ok && nxt > cur
}

const DefaultCountry = "India"

type ShippingAddress struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Normalize trims every field and applies the default country.
func (a *ShippingAddress) Normalize() error {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)

	missing := make([]string, 0)
	if a.Street == "" {
		missing = append(missing, "street")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.State == "" {
		missing = append(missing, "state")
	}
	if a.PostalCode == "" {
		missing = append(missing, "pincode")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidShippingAddress, strings.Join(missing, ", "))
	}

	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return nil
}

type OrderItem struct {
	ProductID uuid.UUID
	SellerID  uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

type Order struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Items            []OrderItem
	ShippingAddress  ShippingAddress
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	Currency         string
	GatewayOrderID   string
	GatewayPaymentID string
	Status           OrderStatus
	// StockSettled is set while the items' quantities are deducted from stock.
	StockSettled bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

// StockMovement tells storage what to do with stock while saving an order.
type StockMovement int

const (
	StockMovementNone StockMovement = iota
	StockMovementRestore
)

type OrderIntent struct {
	OrderID        uuid.UUID
	GatewayOrderID string
	Amount         int64
	Currency       string
	Key            string
}

type OrderPage struct {
	Orders     []*Order
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
