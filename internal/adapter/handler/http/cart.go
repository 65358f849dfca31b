package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	Handler
	service port.Service
}

func NewCartHandler(service port.Service, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CartProductResp struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Price           jsonDecimal  `json:"price"`
	DiscountedPrice *jsonDecimal `json:"discountedPrice,omitempty"`
	Stock           int          `json:"stock"`
	IsActive        bool         `json:"isActive"`
}

type CartItemResp struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	AddedAt   time.Time        `json:"addedAt"`
	Product   *CartProductResp `json:"product"`
}

type CartResp struct {
	Customer  string         `json:"customer"`
	Items     []CartItemResp `json:"items"`
	UpdatedAt *time.Time     `json:"updatedAt,omitempty"`
}

func newCartResp(customerID uuid.UUID, cart *domain.Cart) CartResp {
	r := CartResp{Customer: customerID.String(), Items: make([]CartItemResp, 0)}
	if cart == nil {
		return r
	}
	if !cart.UpdatedAt.IsZero() {
		updated := cart.UpdatedAt
		r.UpdatedAt = &updated
	}
	for _, item := range cart.Items {
		i := CartItemResp{ProductID: item.ProductID.String(), Quantity: item.Quantity, AddedAt: item.AddedAt}
		if p := item.Product; p != nil {
			i.Product = &CartProductResp{
				ID:       p.ID.String(),
				Name:     p.Name,
				Price:    jsonDecimal(p.Price),
				Stock:    p.Stock,
				IsActive: p.IsActive,
			}
			if p.DiscountedPrice != nil {
				d := jsonDecimal(*p.DiscountedPrice)
				i.Product.DiscountedPrice = &d
			}
		}
		r.Items = append(r.Items, i)
	}
	return r
}

// GetCart answers an empty cart for a customer who never added anything.
func (ch *CartHandler) GetCart(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	cart, err := ch.service.GetCartSnapshot(ctx, customerID)
	if err != nil && !errors.Is(err, domain.ErrCartEmpty) {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, "Cart fetched", gin.H{"cart": newCartResp(customerID, cart)})
}

type CartItemReq struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (ch *CartHandler) AddToCart(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	req := CartItemReq{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := ch.service.AddToCart(ctx, customerID, productID, quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, "Item added to cart", gin.H{"cart": newCartResp(customerID, cart)})
}

func (ch *CartHandler) RemoveFromCart(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	err = ch.service.RemoveFromCart(ctx, customerID, productID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, http.StatusOK, "Item removed from cart", nil)
}

type CartQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (ch *CartHandler) UpdateCartItem(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}
	req := CartQuantityReq{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	cart, err := ch.service.UpdateCartItem(ctx, customerID, productID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, "Cart updated", gin.H{"cart": newCartResp(customerID, cart)})
}

func (ch *CartHandler) ClearCart(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	err := ch.service.ClearCart(ctx, customerID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, http.StatusOK, "Cart cleared", nil)
}
