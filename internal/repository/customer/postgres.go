package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, *domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	const insertCustomer = `
INSERT INTO customers (username, email, hashed_password)
VALUES ($1, $2, $3)
RETURNING customer_id, username, email, hashed_password, created_at
`
	var created domain.Customer
	if err := tx.QueryRow(ctx, insertCustomer, c.Username, c.Email, c.PasswordHash).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: insert customer error=%v", err)
		return nil, nil, err
	}

	const insertCart = `
INSERT INTO carts (customer_id)
VALUES ($1)
RETURNING cart_id, customer_id, created_at
`
	var cart domain.Cart
	if err := tx.QueryRow(ctx, insertCart, created.ID).Scan(
		&cart.ID,
		&cart.CustomerID,
		&cart.CreatedAt,
	); err != nil {
		r.logger.Printf("customer repo: insert cart customer_id=%d error=%v", created.ID, err)
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return &created, &cart, nil
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.Customer, *domain.Cart, error) {
	const q = `
SELECT c.customer_id, c.username, c.email, c.hashed_password, c.created_at,
       ct.cart_id, ct.customer_id, ct.created_at
FROM customers c
JOIN carts ct USING (customer_id)
WHERE c.username = $1
LIMIT 1
`
	var c domain.Customer
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, username).Scan(
		&c.ID,
		&c.Username,
		&c.Email,
		&c.PasswordHash,
		&c.CreatedAt,
		&cart.ID,
		&cart.CustomerID,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get by username error=%v", err)
		return nil, nil, err
	}
	return &c, &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT customer_id, username, email, hashed_password, created_at
FROM customers
WHERE customer_id = $1
LIMIT 1
`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID,
		&c.Username,
		&c.Email,
		&c.PasswordHash,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get by id=%d error=%v", id, err)
		return nil, err
	}
	return &c, nil
}
