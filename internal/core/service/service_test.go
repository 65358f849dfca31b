package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/MikeRez0/shopx/internal/core/port/mock"
	"github.com/MikeRez0/shopx/internal/core/service"
	"github.com/MikeRez0/shopx/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test_secret"

type prepareMocks func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, events *mock.MockEventPublisher)

func newTestService(t *testing.T, repo port.Repository, gateway port.PaymentGateway,
	events port.EventPublisher) *service.Service {
	t.Helper()
	s, err := service.NewService(repo, gateway, events,
		service.Settings{Currency: "INR", GatewaySecret: testSecret}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{Street: "12 MG Road", City: "Pune", State: "MH", PostalCode: "411001"}
}

func TestService_CreateOrderIntent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()
	sellerID := uuid.New()
	discounted := decimal.MustParse("450")
	product := &domain.Product{ID: uuid.New(), SellerID: sellerID, Name: "Lamp",
		Price: decimal.MustParse("500"), DiscountedPrice: &discounted, Stock: 10, IsActive: true}

	cartWith := func(p *domain.Product, qty int) *domain.Cart {
		return &domain.Cart{CustomerID: customerID, Items: []domain.CartItem{
			{ProductID: product.ID, Quantity: qty, Product: p},
		}}
	}

	type intentTest struct {
		name      string
		address   domain.ShippingAddress
		mock      prepareMocks
		expError  error
		expIntent *domain.OrderIntent
	}

	tests := []intentTest{
		{
			name:    "Intent good",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(product, 2), nil)
				gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.GatewayOrderRequest) (*domain.GatewayOrder, error) {
						assert.Equal(t, int64(90000), req.Amount)
						assert.Equal(t, "INR", req.Currency)
						assert.NotEmpty(t, req.Receipt)
						return &domain.GatewayOrder{ID: "order_1", Amount: req.Amount, Currency: req.Currency,
							Receipt: req.Receipt}, nil
					})
				gateway.EXPECT().KeyID().Return("rzp_test_key")
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						assert.Equal(t, domain.OrderStatusPending, o.Status)
						assert.Equal(t, "order_1", o.GatewayOrderID)
						assert.True(t, o.TotalAmount.Equal(decimal.MustParse("900")))
						assert.True(t, o.CommissionAmount.Equal(decimal.MustParse("18.00")))
						assert.Equal(t, domain.DefaultCountry, o.ShippingAddress.Country)
						require.Len(t, o.Items, 1)
						assert.Equal(t, sellerID, o.Items[0].SellerID)
						assert.True(t, o.Items[0].Price.Equal(discounted))
						assert.False(t, o.StockSettled)
						return o, nil
					})
			},
			expIntent: &domain.OrderIntent{GatewayOrderID: "order_1", Amount: 90000, Currency: "INR",
				Key: "rzp_test_key"},
		},
		{
			name:     "Address incomplete",
			address:  domain.ShippingAddress{Street: "12 MG Road"},
			mock:     func(*mock.MockRepository, *mock.MockPaymentGateway, *mock.MockEventPublisher) {},
			expError: domain.ErrInvalidShippingAddress,
		},
		{
			name:    "Cart missing",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrCartEmpty,
		},
		{
			name:    "Cart empty",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(&domain.Cart{CustomerID: customerID}, nil)
			},
			expError: domain.ErrCartEmpty,
		},
		{
			name:    "Product gone",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(nil, 1), nil)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:    "Product inactive",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				inactive := *product
				inactive.IsActive = false
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(&inactive, 1), nil)
			},
			expError: domain.ErrProductUnavailable,
		},
		{
			name:    "Insufficient stock skips gateway",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(product, 11), nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name:    "Gateway down",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(product, 1), nil)
				gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expError: domain.ErrGateway,
		},
		{
			name:    "Local save fails",
			address: validAddress(),
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, _ *mock.MockEventPublisher) {
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(cartWith(product, 1), nil)
				gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&domain.GatewayOrder{ID: "order_2"}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			events := mock.NewMockEventPublisher(mockCtrl)
			test.mock(repo, gateway, events)

			s := newTestService(t, repo, gateway, events)
			intent, err := s.CreateOrderIntent(context.Background(), customerID, test.address)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, intent)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, intent.OrderID)
			test.expIntent.OrderID = intent.OrderID
			assert.Equal(t, test.expIntent, intent)
		})
	}
}

func TestService_VerifyPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()
	pending := func() *domain.Order {
		return &domain.Order{ID: uuid.New(), CustomerID: customerID, GatewayOrderID: "order_1",
			TotalAmount: decimal.MustParse("500"), Currency: "INR", Status: domain.OrderStatusPending}
	}
	verification := func(o *domain.Order, paymentID string) domain.PaymentVerification {
		return domain.PaymentVerification{OrderID: o.ID, GatewayOrderID: o.GatewayOrderID,
			GatewayPaymentID: paymentID, Signature: utils.SignPayment(testSecret, o.GatewayOrderID, paymentID)}
	}

	// confirming runs the callback against the given order the way storage would
	confirmWith := func(o *domain.Order) func(context.Context, uuid.UUID, port.ConfirmOrderFn) (*domain.Order, error) {
		return func(_ context.Context, _ uuid.UUID, fn port.ConfirmOrderFn) (*domain.Order, error) {
			payment, err := fn(o)
			if err != nil {
				if errors.Is(err, domain.ErrOrderUnchanged) {
					return o, err
				}
				return nil, err
			}
			assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
			assert.True(t, payment.Amount.Equal(o.TotalAmount))
			o.StockSettled = true
			return o, nil
		}
	}

	t.Run("Verify good", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		events := mock.NewMockEventPublisher(mockCtrl)
		o := pending()

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.OrderEvent) error {
				assert.Equal(t, domain.EventOrderConfirmed, e.Kind)
				assert.Equal(t, o.ID, e.OrderID)
				return nil
			})

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), events)
		result, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, result.Status)
		assert.Equal(t, "pay_1", result.GatewayPaymentID)
	})

	t.Run("Publish failure is not an error", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		events := mock.NewMockEventPublisher(mockCtrl)
		o := pending()

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), events)
		_, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		assert.NoError(t, err)
	})

	t.Run("Forged signature", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		v := verification(o, "pay_1")
		v.Signature = utils.SignPayment("wrong", o.GatewayOrderID, "pay_1")

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, v)
		assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	})

	t.Run("Missing fields", func(t *testing.T) {
		s := newTestService(t, mock.NewMockRepository(mockCtrl), mock.NewMockPaymentGateway(mockCtrl),
			mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, domain.PaymentVerification{OrderID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("Replayed callback", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		o.Status = domain.OrderStatusConfirmed
		o.GatewayPaymentID = "pay_1"
		o.StockSettled = true

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		result, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, result.Status)
	})

	t.Run("Second payment for settled order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		o.Status = domain.OrderStatusConfirmed
		o.GatewayPaymentID = "pay_1"

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_2"))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Replay after cancel", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		o.Status = domain.OrderStatusCancelled
		o.GatewayPaymentID = "pay_1"

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		core, logs := observer.New(zap.WarnLevel)
		s, err := service.NewService(repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl),
			service.Settings{Currency: "INR", GatewaySecret: testSecret}, zap.New(core))
		require.NoError(t, err)

		_, err = s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		entries := logs.FilterMessage("Captured payment left unsettled").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, o.GatewayOrderID, fields["gateway_order"])
		assert.Equal(t, "pay_1", fields["gateway_payment"])
	})

	t.Run("Paid after expiry", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		o.Status = domain.OrderStatusCancelled

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		core, logs := observer.New(zap.WarnLevel)
		s, err := service.NewService(repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl),
			service.Settings{Currency: "INR", GatewaySecret: testSecret}, zap.New(core))
		require.NoError(t, err)

		_, err = s.VerifyPayment(context.Background(), customerID, verification(o, "pay_late"))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, 1, logs.FilterField(zap.String("gateway_payment", "pay_late")).Len())
	})

	t.Run("Other customer", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), uuid.New(), verification(o, "pay_1"))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, domain.OrderStatusPending, o.Status)
	})

	t.Run("Gateway order mismatch", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		v := verification(o, "pay_1")
		v.GatewayOrderID = "order_other"
		v.Signature = utils.SignPayment(testSecret, "order_other", "pay_1")

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(confirmWith(o))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, v)
		assert.ErrorIs(t, err, domain.ErrGatewayOrderMismatch)
	})

	t.Run("Unique violation on replay", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()
		settled := *o
		settled.Status = domain.OrderStatusConfirmed
		settled.GatewayPaymentID = "pay_1"

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).Return(nil, domain.ErrConflictingData)
		repo.EXPECT().ReadOrder(gomock.Any(), o.ID).Return(&settled, nil)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		result, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		require.NoError(t, err)
		assert.Equal(t, "pay_1", result.GatewayPaymentID)
	})

	t.Run("Payment belongs elsewhere", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).Return(nil, domain.ErrConflictingData)
		repo.EXPECT().ReadOrder(gomock.Any(), o.ID).Return(o, nil)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		assert.ErrorIs(t, err, domain.ErrConflictingData)
	})

	t.Run("Order not found", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		o := pending()

		repo.EXPECT().ConfirmOrder(gomock.Any(), o.ID, gomock.Any()).Return(nil, domain.ErrOrderNotFound)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.VerifyPayment(context.Background(), customerID, verification(o, "pay_1"))
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type statusTest struct {
		name        string
		from        domain.OrderStatus
		settled     bool
		to          domain.OrderStatus
		expError    error
		expMovement domain.StockMovement
	}

	tests := []statusTest{
		{name: "Ship confirmed", from: domain.OrderStatusConfirmed, settled: true,
			to: domain.OrderStatusShipped, expMovement: domain.StockMovementNone},
		{name: "Cancel confirmed restores", from: domain.OrderStatusConfirmed, settled: true,
			to: domain.OrderStatusCancelled, expMovement: domain.StockMovementRestore},
		{name: "Cancel pending", from: domain.OrderStatusPending,
			to: domain.OrderStatusCancelled, expMovement: domain.StockMovementNone},
		{name: "Confirm pending by hand", from: domain.OrderStatusPending,
			to: domain.OrderStatusConfirmed, expError: domain.ErrInvalidTransition},
		{name: "Backwards", from: domain.OrderStatusShipped, settled: true,
			to: domain.OrderStatusConfirmed, expError: domain.ErrInvalidTransition},
		{name: "Delivered is final", from: domain.OrderStatusDelivered, settled: true,
			to: domain.OrderStatusCancelled, expError: domain.ErrInvalidTransition},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			o := &domain.Order{ID: uuid.New(), Status: test.from, StockSettled: test.settled}

			repo.EXPECT().UpdateOrder(gomock.Any(), o.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					movement, err := fn(o)
					if err != nil {
						return nil, err
					}
					assert.Equal(t, test.expMovement, movement)
					return o, nil
				})

			s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
			result, err := s.UpdateOrderStatus(context.Background(), o.ID, test.to)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.to, result.Status)
		})
	}
}

func TestService_ListOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()

	tests := []struct {
		name      string
		page      int
		limit     int
		expOffset int
		expLimit  int
		total     int
		expPages  int
	}{
		{name: "Defaults", page: 0, limit: 0, expOffset: 0, expLimit: 12, total: 25, expPages: 3},
		{name: "Third page", page: 3, limit: 5, expOffset: 10, expLimit: 5, total: 11, expPages: 3},
		{name: "Limit capped", page: 1, limit: 1000, expOffset: 0, expLimit: 100, total: 0, expPages: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			repo.EXPECT().ListOrdersByCustomer(gomock.Any(), customerID, test.expOffset, test.expLimit).
				Return([]*domain.Order{}, test.total, nil)

			s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
			page, err := s.ListOrdersByCustomer(context.Background(), customerID, test.page, test.limit)
			require.NoError(t, err)
			assert.Equal(t, test.total, page.Total)
			assert.Equal(t, test.expLimit, page.Limit)
			assert.Equal(t, test.expPages, page.TotalPages)
		})
	}
}

func TestService_ListOrdersBySeller(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sellerID := uuid.New()

	tests := []struct {
		name      string
		status    domain.OrderStatus
		page      int
		limit     int
		expOffset int
		expLimit  int
		total     int
		expPages  int
		repoErr   error
	}{
		{name: "Any status", page: 0, limit: 0, expOffset: 0, expLimit: 12, total: 13, expPages: 2},
		{name: "Shipped only", status: domain.OrderStatusShipped, page: 2, limit: 4,
			expOffset: 4, expLimit: 4, total: 5, expPages: 2},
		{name: "Storage down", page: 1, limit: 10, expOffset: 0, expLimit: 10, repoErr: errors.New("conn reset")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			repo.EXPECT().ListOrdersBySeller(gomock.Any(), sellerID, test.status, test.expOffset, test.expLimit).
				Return([]*domain.Order{}, test.total, test.repoErr)

			s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
			page, err := s.ListOrdersBySeller(context.Background(), sellerID, test.status, test.page, test.limit)
			if test.repoErr != nil {
				assert.ErrorIs(t, err, test.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.total, page.Total)
			assert.Equal(t, test.expLimit, page.Limit)
			assert.Equal(t, test.expPages, page.TotalPages)
		})
	}
}

func TestService_ExpirePendingOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	stale := &domain.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	paid := &domain.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	cutoff := time.Now().Add(-30 * time.Minute)

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ListOrdersByStatus(gomock.Any(), domain.OrderStatusPending, cutoff).
		Return([]*domain.Order{stale, paid}, nil)
	repo.EXPECT().UpdateOrder(gomock.Any(), stale.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
			movement, err := fn(stale)
			assert.NoError(t, err)
			assert.Equal(t, domain.StockMovementNone, movement)
			return stale, nil
		})
	repo.EXPECT().UpdateOrder(gomock.Any(), paid.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
			// settled between listing and locking
			locked := *paid
			locked.Status = domain.OrderStatusConfirmed
			_, err := fn(&locked)
			return &locked, err
		})

	s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
	n, err := s.ExpirePendingOrders(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, domain.OrderStatusCancelled, stale.Status)
}

func TestService_AddToCart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()
	product := &domain.Product{ID: uuid.New(), Name: "Lamp", Price: decimal.MustParse("500"), Stock: 5, IsActive: true}

	t.Run("Merge capped at stock", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		existing := &domain.Cart{CustomerID: customerID, Items: []domain.CartItem{{ProductID: product.ID, Quantity: 4}}}
		repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
		repo.EXPECT().GetCart(gomock.Any(), customerID).Return(existing, nil)
		repo.EXPECT().UpsertCartItem(gomock.Any(), customerID, product.ID, 5).Return(nil)
		repo.EXPECT().GetCart(gomock.Any(), customerID).Return(existing, nil)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.AddToCart(context.Background(), customerID, product.ID, 3)
		assert.NoError(t, err)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		s := newTestService(t, mock.NewMockRepository(mockCtrl), mock.NewMockPaymentGateway(mockCtrl),
			mock.NewMockEventPublisher(mockCtrl))
		_, err := s.AddToCart(context.Background(), customerID, product.ID, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("More than stock", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.AddToCart(context.Background(), customerID, product.ID, 6)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.EqualError(t, err, "insufficient stock for Lamp: only 5 left")
	})

	t.Run("Unknown product", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(nil, domain.ErrDataNotFound)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		_, err := s.AddToCart(context.Background(), customerID, product.ID, 1)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestService_UpdateCartItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()
	product := &domain.Product{ID: uuid.New(), Name: "Lamp", Price: decimal.MustParse("500"), Stock: 5, IsActive: true}
	updated := &domain.Cart{CustomerID: customerID, Items: []domain.CartItem{{ProductID: product.ID, Quantity: 2}}}

	tests := []struct {
		name         string
		quantity     int
		prepareMocks func(repo *mock.MockRepository)
		expErr       error
		expQuantity  int
	}{
		{
			name:     "Exact quantity",
			quantity: 2,
			prepareMocks: func(repo *mock.MockRepository) {
				repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
				repo.EXPECT().UpdateCartItem(gomock.Any(), customerID, product.ID, 2).Return(nil)
				repo.EXPECT().GetCart(gomock.Any(), customerID).Return(updated, nil)
			},
			expQuantity: 2,
		},
		{
			name:         "Zero quantity",
			quantity:     0,
			prepareMocks: func(repo *mock.MockRepository) {},
			expErr:       domain.ErrInvalidQuantity,
		},
		{
			name:     "More than stock",
			quantity: 6,
			prepareMocks: func(repo *mock.MockRepository) {
				repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
			},
			expErr: domain.ErrInsufficientStock,
		},
		{
			name:     "Unknown product",
			quantity: 1,
			prepareMocks: func(repo *mock.MockRepository) {
				repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(nil, domain.ErrDataNotFound)
			},
			expErr: domain.ErrProductNotFound,
		},
		{
			name:     "No cart",
			quantity: 1,
			prepareMocks: func(repo *mock.MockRepository) {
				repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
				repo.EXPECT().UpdateCartItem(gomock.Any(), customerID, product.ID, 1).Return(domain.ErrCartNotFound)
			},
			expErr: domain.ErrCartNotFound,
		},
		{
			name:     "Item not in cart",
			quantity: 1,
			prepareMocks: func(repo *mock.MockRepository) {
				repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
				repo.EXPECT().UpdateCartItem(gomock.Any(), customerID, product.ID, 1).Return(domain.ErrCartItemNotFound)
			},
			expErr: domain.ErrCartItemNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.prepareMocks(repo)

			s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
			cart, err := s.UpdateCartItem(context.Background(), customerID, product.ID, test.quantity)
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expQuantity, cart.Items[0].Quantity)
		})
	}
}

func TestService_RemoveAndClearCart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customerID := uuid.New()
	productID := uuid.New()

	t.Run("Remove without cart", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().RemoveCartItem(gomock.Any(), customerID, productID).Return(domain.ErrDataNotFound)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		err := s.RemoveFromCart(context.Background(), customerID, productID)
		assert.ErrorIs(t, err, domain.ErrCartNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ClearCart(gomock.Any(), customerID).Return(nil)

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		assert.NoError(t, s.ClearCart(context.Background(), customerID))
	})

	t.Run("Clear fails", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ClearCart(gomock.Any(), customerID).Return(errors.New("conn reset"))

		s := newTestService(t, repo, mock.NewMockPaymentGateway(mockCtrl), mock.NewMockEventPublisher(mockCtrl))
		assert.Error(t, s.ClearCart(context.Background(), customerID))
	})
}
