package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "customer_id",
	"street", "city", "state", "postal_code", "country",
	"total_amount", "commission_amount", "currency",
	"gateway_order_id", "gateway_payment_id",
	"status", "stock_settled", "created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var paymentID *string
	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.ShippingAddress.Street,
		&order.ShippingAddress.City,
		&order.ShippingAddress.State,
		&order.ShippingAddress.PostalCode,
		&order.ShippingAddress.Country,
		&order.TotalAmount,
		&order.CommissionAmount,
		&order.Currency,
		&order.GatewayOrderID,
		&paymentID,
		&order.Status,
		&order.StockSettled,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if paymentID != nil {
		order.GatewayPaymentID = *paymentID
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns(orderColumns...).
			Values(
				order.ID, order.CustomerID,
				order.ShippingAddress.Street, order.ShippingAddress.City, order.ShippingAddress.State,
				order.ShippingAddress.PostalCode, order.ShippingAddress.Country,
				order.TotalAmount, order.CommissionAmount, order.Currency,
				order.GatewayOrderID, nullString(order.GatewayPaymentID),
				order.Status, order.StockSettled, order.CreatedAt, order.UpdatedAt,
			)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		itemsSt := r.db.QueryBuilder.
			Insert("order_items").
			Columns("order_id", "line_no", "product_id", "seller_id", "quantity", "price")
		for i, item := range order.Items {
			itemsSt = itemsSt.Values(order.ID, i, item.ProductID, item.SellerID, item.Quantity, item.Price)
		}

		sql, args, err = itemsSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, orderID, false)
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uuid.UUID, lock bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if lock {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	err = r.loadItems(ctx, q, []*domain.Order{order})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) loadItems(ctx context.Context, q querier, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		o.Items = make([]domain.OrderItem, 0)
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	statement := r.db.QueryBuilder.
		Select("order_id", "product_id", "seller_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "line_no")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		item := domain.OrderItem{}
		err := rows.Scan(&orderID, &item.ProductID, &item.SellerID, &item.Quantity, &item.Price)
		if err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return rows.Err()
}

func (r *Repository) listOrders(ctx context.Context, where sq.Sqlizer, offset, limit int) ([]*domain.Order, int, error) {
	countSt := r.db.QueryBuilder.Select("count(*)").From("orders")
	listSt := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if where != nil {
		countSt = countSt.Where(where)
		listSt = listSt.Where(where)
	}

	sql, args, err := countSt.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	list, err := r.queryOrders(ctx, listSt)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *Repository) queryOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, order)
	}
	rows.Close()

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	err = r.loadItems(ctx, r.db, list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*domain.Order, int, error) {
	return r.listOrders(ctx, sq.Eq{"customer_id": customerID}, offset, limit)
}

func (r *Repository) ListOrders(ctx context.Context, offset, limit int) ([]*domain.Order, int, error) {
	return r.listOrders(ctx, nil, offset, limit)
}

func (r *Repository) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID, status domain.OrderStatus, offset, limit int) ([]*domain.Order, int, error) {
	where := sq.And{
		sq.Expr("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.seller_id = ?)", sellerID),
	}
	if status != "" {
		where = append(where, sq.Eq{"status": status})
	}
	return r.listOrders(ctx, where, offset, limit)
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, createdBefore time.Time) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status}).
		Where(sq.Lt{"created_at": createdBefore}).
		OrderBy("created_at")

	return r.queryOrders(ctx, statement)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
