// Package memory keeps the repository in process memory. It backs DEV runs
// without a database and the settlement tests; every operation holds one
// lock, so each one is atomic the way a transaction is in Postgres.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/google/uuid"
)

type Store struct {
	mu        sync.Mutex
	customers map[uuid.UUID]domain.Customer
	products  map[uuid.UUID]domain.Product
	carts     map[uuid.UUID]*domain.Cart
	orders    map[uuid.UUID]*domain.Order
	payments  map[string]domain.Payment
	// gateway order id -> payment
	paymentsByOrder map[string]string
}

func NewStore() *Store {
	return &Store{
		customers:       make(map[uuid.UUID]domain.Customer),
		products:        make(map[uuid.UUID]domain.Product),
		carts:           make(map[uuid.UUID]*domain.Cart),
		orders:          make(map[uuid.UUID]*domain.Order),
		payments:        make(map[string]domain.Payment),
		paymentsByOrder: make(map[string]string),
	}
}

var _ port.Repository = (*Store)(nil)

func (s *Store) SaveCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *Store) SaveProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *Store) Product(productID uuid.UUID) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	return p, ok
}

func (s *Store) Payments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		list = append(list, p)
	}
	return list
}

func (s *Store) GetCustomer(_ context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[customerID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &c, nil
}

func (s *Store) GetProduct(_ context.Context, productID uuid.UUID) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &p, nil
}

// GetCart resolves live products; a line whose product vanished keeps a nil Product.
func (s *Store) GetCart(_ context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[customerID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	snapshot := domain.Cart{CustomerID: cart.CustomerID, UpdatedAt: cart.UpdatedAt,
		Items: make([]domain.CartItem, 0, len(cart.Items))}
	for _, item := range cart.Items {
		if p, ok := s.products[item.ProductID]; ok {
			item.Product = &p
		}
		snapshot.Items = append(snapshot.Items, item)
	}
	return &snapshot, nil
}

func (s *Store) UpsertCartItem(_ context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return domain.ErrDataNotFound
	}

	now := time.Now()
	cart, ok := s.carts[customerID]
	if !ok {
		cart = &domain.Cart{CustomerID: customerID}
		s.carts[customerID] = cart
	}
	cart.UpdatedAt = now

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity, AddedAt: now})
	return nil
}

func (s *Store) RemoveCartItem(_ context.Context, customerID uuid.UUID, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[customerID]
	if !ok {
		return domain.ErrDataNotFound
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items
	cart.UpdatedAt = time.Now()
	return nil
}

func (s *Store) UpdateCartItem(_ context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[customerID]
	if !ok {
		return domain.ErrCartNotFound
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrCartItemNotFound
}

func (s *Store) ClearCart(_ context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[customerID]; ok {
		cart.Items = nil
		cart.UpdatedAt = time.Now()
	}
	return nil
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	for _, o := range s.orders {
		if o.GatewayOrderID == order.GatewayOrderID {
			return nil, domain.ErrConflictingData
		}
	}
	s.orders[order.ID] = copyOrder(order)
	return order, nil
}

func (s *Store) ReadOrder(_ context.Context, orderID uuid.UUID) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (s *Store) ListOrdersByCustomer(_ context.Context, customerID uuid.UUID, offset, limit int) ([]*domain.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, total := s.page(func(o *domain.Order) bool { return o.CustomerID == customerID }, offset, limit)
	return list, total, nil
}

func (s *Store) ListOrders(_ context.Context, offset, limit int) ([]*domain.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, total := s.page(func(*domain.Order) bool { return true }, offset, limit)
	return list, total, nil
}

func (s *Store) ListOrdersBySeller(_ context.Context, sellerID uuid.UUID, status domain.OrderStatus, offset, limit int) ([]*domain.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, total := s.page(func(o *domain.Order) bool {
		if status != "" && o.Status != status {
			return false
		}
		for _, item := range o.Items {
			if item.SellerID == sellerID {
				return true
			}
		}
		return false
	}, offset, limit)
	return list, total, nil
}

func (s *Store) ListOrdersByStatus(_ context.Context, status domain.OrderStatus, createdBefore time.Time) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if o.Status == status && o.CreatedAt.Before(createdBefore) {
			list = append(list, copyOrder(o))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// page must be called with the lock held.
func (s *Store) page(match func(*domain.Order) bool, offset, limit int) ([]*domain.Order, int) {
	all := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if match(o) {
			all = append(all, o)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	list := make([]*domain.Order, 0, limit)
	for i := offset; i < len(all) && len(list) < limit; i++ {
		list = append(list, copyOrder(all[i]))
	}
	return list, len(all)
}

func (s *Store) ConfirmOrder(_ context.Context, orderID uuid.UUID, confirmFn port.ConfirmOrderFn) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	o := copyOrder(stored)
	payment, err := confirmFn(o)
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			return o, err
		}
		return nil, err
	}

	if _, dup := s.payments[payment.GatewayPaymentID]; dup {
		return nil, domain.ErrConflictingData
	}
	if _, dup := s.paymentsByOrder[payment.GatewayOrderID]; dup {
		return nil, domain.ErrConflictingData
	}

	// check every line before touching stock so a failure leaves nothing behind
	need := make(map[uuid.UUID]int)
	for _, item := range o.Items {
		need[item.ProductID] += item.Quantity
	}
	for _, item := range o.Items {
		p, ok := s.products[item.ProductID]
		if !ok {
			return nil, &domain.ProductError{ProductID: item.ProductID, Err: domain.ErrProductNotFound}
		}
		if p.Stock < need[item.ProductID] {
			return nil, &domain.ProductError{ProductID: p.ID, Name: p.Name, Available: p.Stock,
				Err: domain.ErrInsufficientStock}
		}
	}
	for id, q := range need {
		p := s.products[id]
		p.Stock -= q
		s.products[id] = p
	}

	s.payments[payment.GatewayPaymentID] = *payment
	s.paymentsByOrder[payment.GatewayOrderID] = payment.GatewayPaymentID

	o.StockSettled = true
	o.UpdatedAt = time.Now()
	s.orders[o.ID] = copyOrder(o)

	if cart, ok := s.carts[o.CustomerID]; ok {
		cart.Items = nil
		cart.UpdatedAt = o.UpdatedAt
	}
	return o, nil
}

func (s *Store) UpdateOrder(_ context.Context, orderID uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	o := copyOrder(stored)
	movement, err := updateFn(o)
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			return o, err
		}
		return nil, err
	}

	if movement == domain.StockMovementRestore {
		for _, item := range o.Items {
			if p, ok := s.products[item.ProductID]; ok {
				p.Stock += item.Quantity
				s.products[item.ProductID] = p
			}
		}
		o.StockSettled = false
	}
	o.UpdatedAt = time.Now()
	s.orders[o.ID] = copyOrder(o)
	return o, nil
}

func copyOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.OrderItem(nil), o.Items...)
	return &c
}
