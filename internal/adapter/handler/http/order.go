package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country,omitempty"`
}

type OrderItemResp struct {
	ProductID string      `json:"product"`
	SellerID  string      `json:"seller"`
	Quantity  int         `json:"quantity"`
	Price     jsonDecimal `json:"price"`
}

type OrderResp struct {
	ID               string          `json:"id"`
	Customer         string          `json:"customer"`
	Items            []OrderItemResp `json:"items"`
	ShippingAddress  AddressPayload  `json:"shippingAddress"`
	TotalAmount      jsonDecimal     `json:"totalAmount"`
	CommissionAmount jsonDecimal     `json:"commissionAmount"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	RazorpayOrderID  string          `json:"razorpayOrderId"`
	PaymentID        string          `json:"paymentId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func newOrderResp(o *domain.Order) OrderResp {
	r := OrderResp{
		ID:       o.ID.String(),
		Customer: o.CustomerID.String(),
		Items:    make([]OrderItemResp, 0, len(o.Items)),
		ShippingAddress: AddressPayload{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			Pincode: o.ShippingAddress.PostalCode,
			Country: o.ShippingAddress.Country,
		},
		TotalAmount:      jsonDecimal(o.TotalAmount),
		CommissionAmount: jsonDecimal(o.CommissionAmount),
		Currency:         o.Currency,
		Status:           string(o.Status),
		RazorpayOrderID:  o.GatewayOrderID,
		PaymentID:        o.GatewayPaymentID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	for _, item := range o.Items {
		r.Items = append(r.Items, OrderItemResp{
			ProductID: item.ProductID.String(),
			SellerID:  item.SellerID.String(),
			Quantity:  item.Quantity,
			Price:     jsonDecimal(item.Price),
		})
	}
	return r
}

type CreateOrderReq struct {
	ShippingAddress *AddressPayload `json:"shippingAddress"`
}

func (oh *OrderHandler) CreateOrderIntent(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	req := CreateOrderReq{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if req.ShippingAddress == nil {
		oh.handleError(ctx, domain.ErrInvalidShippingAddress)
		return
	}

	intent, err := oh.service.CreateOrderIntent(ctx, customerID, domain.ShippingAddress{
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		State:      req.ShippingAddress.State,
		PostalCode: req.ShippingAddress.Pincode,
		Country:    req.ShippingAddress.Country,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, http.StatusCreated, "Order initiated", gin.H{
		"orderId":         intent.OrderID.String(),
		"razorpayOrderId": intent.GatewayOrderID,
		"amount":          intent.Amount,
		"currency":        intent.Currency,
		"key":             intent.Key,
	})
}

type VerifyPaymentReq struct {
	OrderID           string `json:"orderId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (oh *OrderHandler) VerifyPayment(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	req := VerifyPaymentReq{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.VerifyPayment(ctx, customerID, domain.PaymentVerification{
		OrderID:          orderID,
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, "Payment verified and order confirmed", gin.H{"order": newOrderResp(order)})
}

// GetOrder is open to the order's customer and to admins.
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if order.CustomerID != payload.CustomerID && payload.Role != domain.RoleAdmin {
		oh.handleError(ctx, domain.ErrForbidden)
		return
	}

	oh.handleSuccess(ctx, "Order fetched", gin.H{"order": newOrderResp(order)})
}

func pageQuery(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	return page, limit
}

func (oh *OrderHandler) pageResponse(ctx *gin.Context, page *domain.OrderPage) {
	list := make([]OrderResp, 0, len(page.Orders))
	for _, o := range page.Orders {
		list = append(list, newOrderResp(o))
	}
	oh.handleSuccess(ctx, "Orders fetched", gin.H{
		"orders":     list,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"limit":      page.Limit,
	})
}

func (oh *OrderHandler) ListOrdersByCustomer(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID
	page, limit := pageQuery(ctx)

	result, err := oh.service.ListOrdersByCustomer(ctx, customerID, page, limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.pageResponse(ctx, result)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	page, limit := pageQuery(ctx)

	result, err := oh.service.ListOrders(ctx, page, limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.pageResponse(ctx, result)
}

// ListOrdersBySeller serves the seller dashboard; ?status narrows the list.
func (oh *OrderHandler) ListOrdersBySeller(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).CustomerID
	page, limit := pageQuery(ctx)

	var status domain.OrderStatus
	if q := ctx.Query("status"); q != "" {
		parsed, err := domain.ParseOrderStatus(q)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		status = parsed
	}

	result, err := oh.service.ListOrdersBySeller(ctx, sellerID, status, page, limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.pageResponse(ctx, result)
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := UpdateStatusReq{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil || status == domain.OrderStatusPending {
		oh.handleError(ctx, domain.ErrInvalidOrderStatus)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, "Order status updated", gin.H{"order": newOrderResp(order)})
}
