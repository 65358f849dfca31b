package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetCart(ctx context.Context, customerID uuid.UUID) (*domain.Cart, error) {
	statement := r.db.QueryBuilder.
		Select("customer_id", "updated_at").
		From("carts").
		Where(sq.Eq{"customer_id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	cart := domain.Cart{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&cart.CustomerID, &cart.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	itemsSt := r.db.QueryBuilder.
		Select("ci.product_id", "ci.quantity", "ci.added_at",
			"p.id", "p.seller_id", "p.name", "p.price", "p.discounted_price", "p.stock", "p.is_active").
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.customer_id": customerID}).
		OrderBy("ci.added_at", "ci.product_id")

	sql, args, err = itemsSt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = make([]domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.AddedAt,
			&item.Product.ID,
			&item.Product.SellerID,
			&item.Product.Name,
			&item.Product.Price,
			&item.Product.DiscountedPrice,
			&item.Product.Stock,
			&item.Product.IsActive,
		)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *Repository) UpsertCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		cartSt := r.db.QueryBuilder.
			Insert("carts").
			Columns("customer_id").
			Values(customerID).
			Suffix("ON CONFLICT (customer_id) DO UPDATE SET updated_at = now()")

		sql, args, err := cartSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		itemSt := r.db.QueryBuilder.
			Insert("cart_items").
			Columns("customer_id", "product_id", "quantity").
			Values(customerID, productID, quantity).
			Suffix("ON CONFLICT (customer_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity")

		sql, args, err = itemSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	return mapError(err)
}

func (r *Repository) RemoveCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := r.touchCart(ctx, tx, customerID)
		if err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Delete("cart_items").
			Where(sq.Eq{"customer_id": customerID, "product_id": productID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	return mapError(err)
}

func (r *Repository) UpdateCartItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := r.touchCart(ctx, tx, customerID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return domain.ErrCartNotFound
			}
			return err
		}

		statement := r.db.QueryBuilder.
			Update("cart_items").
			Set("quantity", quantity).
			Where(sq.Eq{"customer_id": customerID, "product_id": productID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrCartItemNotFound
		}
		return nil
	})

	return mapError(err)
}

func (r *Repository) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	return mapError(r.clearCart(ctx, r.db, customerID))
}

// clearCart empties the cart but keeps the cart row.
func (r *Repository) clearCart(ctx context.Context, q querier, customerID uuid.UUID) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"customer_id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	err = r.touchCart(ctx, q, customerID)
	if errors.Is(err, domain.ErrDataNotFound) {
		return nil
	}
	return err
}

func (r *Repository) touchCart(ctx context.Context, q querier, customerID uuid.UUID) error {
	statement := r.db.QueryBuilder.
		Update("carts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"customer_id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
