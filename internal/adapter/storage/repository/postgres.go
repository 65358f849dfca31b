package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/shopx/internal/adapter/storage"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.CheckViolation:
			if pgErr.ConstraintName == "products_stock_non_negative" {
				return domain.ErrInsufficientStock
			}
		case pgerrcode.ForeignKeyViolation:
			return domain.ErrDataNotFound
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	return err
}

func (r *Repository) GetCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email").
		From("customers").
		Where(sq.Eq{"id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&customer.ID, &customer.Name, &customer.Email)
	if err != nil {
		return nil, mapError(err)
	}
	return &customer, nil
}

// CreateCustomer mirrors a customer from the user service.
func (r *Repository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Insert("customers").
		Columns("id", "name", "email").
		Values(customer.ID, customer.Name, customer.Email)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}

var productColumns = []string{"id", "seller_id", "name", "price", "discounted_price", "stock", "is_active"}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Price,
		&p.DiscountedPrice,
		&p.Stock,
		&p.IsActive,
	)
}

func (r *Repository) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}
	err = scanProduct(r.db.QueryRow(ctx, sql, args...), &product)
	if err != nil {
		return nil, mapError(err)
	}
	return &product, nil
}

// SaveProduct mirrors a catalog record, inserting or replacing it.
func (r *Repository) SaveProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns(productColumns...).
		Values(p.ID, p.SellerID, p.Name, p.Price, p.DiscountedPrice, p.Stock, p.IsActive).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			seller_id = EXCLUDED.seller_id,
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			discounted_price = EXCLUDED.discounted_price,
			stock = EXCLUDED.stock,
			is_active = EXCLUDED.is_active,
			updated_at = now()`)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}
