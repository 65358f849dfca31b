package repository

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ port.Repository = (*Repository)(nil)

// ConfirmOrder settles a payment in one transaction. On ErrOrderUnchanged
// the order is returned alongside the error and nothing is written.
func (r *Repository) ConfirmOrder(ctx context.Context, orderID uuid.UUID, confirmFn port.ConfirmOrderFn) (*domain.Order, error) {
	var order *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		o, err := r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		order = o

		payment, err := confirmFn(o)
		if err != nil {
			return err
		}

		err = r.insertPayment(ctx, tx, payment)
		if err != nil {
			return err
		}

		for _, item := range byProduct(o.Items) {
			err = r.takeStock(ctx, tx, item)
			if err != nil {
				return err
			}
		}
		o.StockSettled = true
		o.UpdatedAt = time.Now()

		err = r.saveOrder(ctx, tx, o)
		if err != nil {
			return err
		}

		return r.clearCart(ctx, tx, o.CustomerID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			return order, err
		}
		return nil, mapError(err)
	}
	return order, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		o, err := r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		order = o

		movement, err := updateFn(o)
		if err != nil {
			return err
		}

		if movement == domain.StockMovementRestore {
			for _, item := range byProduct(o.Items) {
				err = r.restoreStock(ctx, tx, item)
				if err != nil {
					return err
				}
			}
			o.StockSettled = false
		}
		o.UpdatedAt = time.Now()

		return r.saveOrder(ctx, tx, o)
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderUnchanged) {
			return order, err
		}
		return nil, mapError(err)
	}
	return order, nil
}

// byProduct orders lines by product id so concurrent settlements lock
// product rows in the same sequence.
func byProduct(items []domain.OrderItem) []domain.OrderItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.OrderItem) int {
		return bytes.Compare(a.ProductID[:], b.ProductID[:])
	})
	return sorted
}

func (r *Repository) insertPayment(ctx context.Context, q querier, p *domain.Payment) error {
	statement := r.db.QueryBuilder.
		Insert("payments").
		Columns("id", "order_id", "customer_id", "gateway_order_id", "gateway_payment_id",
			"gateway_signature", "amount", "currency", "status", "created_at").
		Values(p.ID, p.OrderID, p.CustomerID, p.GatewayOrderID, p.GatewayPaymentID,
			p.GatewaySignature, p.Amount, p.Currency, p.Status, p.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

// takeStock is a compare-and-decrement; zero affected rows means the
// product ran out between checkout and settlement.
func (r *Repository) takeStock(ctx context.Context, q querier, item domain.OrderItem) error {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("stock", sq.Expr("stock - ?", item.Quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ProductID}).
		Where(sq.GtOrEq{"stock": item.Quantity})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	pe := &domain.ProductError{ProductID: item.ProductID, Err: domain.ErrInsufficientStock}
	stockSt := r.db.QueryBuilder.
		Select("name", "stock").
		From("products").
		Where(sq.Eq{"id": item.ProductID})

	sql, args, err = stockSt.ToSql()
	if err != nil {
		return err
	}
	err = q.QueryRow(ctx, sql, args...).Scan(&pe.Name, &pe.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			pe.Err = domain.ErrProductNotFound
			return pe
		}
		return err
	}
	return pe
}

func (r *Repository) restoreStock(ctx context.Context, q querier, item domain.OrderItem) error {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("stock", sq.Expr("stock + ?", item.Quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ProductID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) saveOrder(ctx context.Context, q querier, o *domain.Order) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", o.Status).
		Set("gateway_payment_id", nullString(o.GatewayPaymentID)).
		Set("stock_settled", o.StockSettled).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"id": o.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}
