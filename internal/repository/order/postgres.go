package order

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
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

// Checkout runs order-insert, snapshot-insert, and cart-clear inside one
// transaction. The cart row is locked first so a concurrent checkout or add
// against the same cart serializes behind it; carts never contend with each
// other.
func (r *postgresRepo) Checkout(ctx context.Context, cartID int64) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var customerID int64
	err = tx.QueryRow(ctx, `
SELECT customer_id
FROM carts
WHERE cart_id = $1
FOR UPDATE
`, cartID).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: lock cart_id=%d error=%v", cartID, err)
		return nil, err
	}

	var ord domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING order_id, customer_id, created_at
`, customerID).Scan(&ord.ID, &ord.CustomerID, &ord.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert order cart_id=%d error=%v", cartID, err)
		return nil, err
	}

	cmd, err := tx.Exec(ctx, `
INSERT INTO ordered_products (order_id, product_id, product_name, price_cents, description, image, quantity)
SELECT $1, p.product_id, p.product_name, p.price_cents, p.description, p.image, cp.quantity
FROM carted_products cp
JOIN products p USING (product_id)
WHERE cp.cart_id = $2
`, ord.ID, cartID)
	if err != nil {
		r.logger.Printf("order repo: snapshot lines cart_id=%d error=%v", cartID, err)
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrEmptyCart
	}

	if _, err := tx.Exec(ctx, `DELETE FROM carted_products WHERE cart_id = $1`, cartID); err != nil {
		r.logger.Printf("order repo: clear cart_id=%d error=%v", cartID, err)
		return nil, err
	}

	lines, err := fetchLines(ctx, tx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Lines = lines

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	const q = `
SELECT order_id, customer_id, created_at
FROM orders
WHERE customer_id = $1
ORDER BY order_id DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var ord domain.Order
		if err := rows.Scan(&ord.ID, &ord.CustomerID, &ord.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := fetchLines(ctx, r.pool, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func fetchLines(ctx context.Context, q querier, orderID int64) ([]domain.OrderLine, error) {
	const linesQuery = `
SELECT ordered_product_id, order_id, product_id, product_name, price_cents, description, image, quantity
FROM ordered_products
WHERE order_id = $1
ORDER BY ordered_product_id
`
	rows, err := q.Query(ctx, linesQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.ProductName,
			&line.PriceCents,
			&line.Description,
			&line.Image,
			&line.Quantity,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
