package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByID(ctx context.Context, cartID int64) (*domain.Cart, error) {
	const q = `
SELECT cart_id, customer_id, created_at
FROM carts
WHERE cart_id = $1
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, cartID).Scan(&cart.ID, &cart.CustomerID, &cart.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem relies on the conflict clause for the merge path: the ceiling check
// is embedded in the UPDATE's WHERE so two concurrent adds cannot interleave
// past the limit. When the clause filters the row out, RETURNING yields
// nothing and the existing line keeps its quantity.
func (r *postgresRepo) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartLine, error) {
	const q = `
INSERT INTO carted_products (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = carted_products.quantity + EXCLUDED.quantity
WHERE carted_products.quantity + EXCLUDED.quantity <= $4
RETURNING carted_product_id, cart_id, product_id, quantity
`
	var line domain.CartLine
	err := r.pool.QueryRow(ctx, q, cartID, productID, quantity, domain.MaxLineQuantity).Scan(
		&line.ID,
		&line.CartID,
		&line.ProductID,
		&line.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuantityLimit
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return nil, domain.ErrNotFound
			case "23514":
				return nil, domain.ErrQuantityLimit
			}
		}
		return nil, err
	}
	return &line, nil
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	const q = `
UPDATE carted_products
SET quantity = $3
WHERE cart_id = $1 AND product_id = $2
`
	cmd, err := r.pool.Exec(ctx, q, cartID, productID, quantity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return domain.ErrQuantityLimit
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveItem is idempotent: deleting an absent line is not an error.
func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, productID int64) error {
	const q = `
DELETE FROM carted_products
WHERE cart_id = $1 AND product_id = $2
`
	_, err := r.pool.Exec(ctx, q, cartID, productID)
	return err
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	const q = `
SELECT cp.carted_product_id, cp.cart_id, cp.product_id, cp.quantity,
       p.product_name, p.price_cents, p.description, p.image
FROM carted_products cp
JOIN products p USING (product_id)
JOIN carts c USING (cart_id)
WHERE c.customer_id = $1
ORDER BY cp.carted_product_id
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.ProductName,
			&item.PriceCents,
			&item.Description,
			&item.Image,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear is idempotent; clearing an empty cart deletes zero rows.
func (r *postgresRepo) Clear(ctx context.Context, cartID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carted_products WHERE cart_id = $1`, cartID)
	return err
}
