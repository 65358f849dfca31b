package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type Product struct {
	ID              uuid.UUID
	SellerID        uuid.UUID
	Name            string
	Price           decimal.Decimal
	DiscountedPrice *decimal.Decimal
	Stock           int
	IsActive        bool
}

// EffectivePrice is the discounted price when it undercuts the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil && p.DiscountedPrice.Less(p.Price) {
		return *p.DiscountedPrice
	}
	return p.Price
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	AddedAt   time.Time
	Product   *Product
}

type Cart struct {
	CustomerID uuid.UUID
	Items      []CartItem
	UpdatedAt  time.Time
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
