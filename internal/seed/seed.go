package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	PriceCents  int64
	Description string
	Image       string
	Category    string
}

// Apply inserts basic catalog data for manual testing. It is idempotent via
// ON CONFLICT on the product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Mechanical Keyboard",
			PriceCents:  8999,
			Description: "Tenkeyless board with hot-swappable switches",
			Image:       "/images/keyboard.jpg",
			Category:    "electronics",
		},
		{
			Name:        "Wireless Mouse",
			PriceCents:  3499,
			Description: "Low-latency mouse with adjustable DPI",
			Image:       "/images/mouse.jpg",
			Category:    "electronics",
		},
		{
			Name:        "Canvas Tote Bag",
			PriceCents:  1599,
			Description: "Heavy-duty cotton tote",
			Image:       "/images/tote.jpg",
			Category:    "accessories",
		},
		{
			Name:        "Ceramic Mug",
			PriceCents:  1299,
			Description: "12oz mug, dishwasher safe",
			Image:       "/images/mug.jpg",
			Category:    "kitchen",
		},
		{
			Name:        "Pour-Over Kettle",
			PriceCents:  4599,
			Description: "Gooseneck kettle for slow pours",
			Image:       "/images/kettle.jpg",
			Category:    "kitchen",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (product_name, price_cents, description, image, category)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (product_name) DO UPDATE
SET price_cents = EXCLUDED.price_cents,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    category = EXCLUDED.category
`
	_, err := pool.Exec(ctx, q, p.Name, p.PriceCents, p.Description, p.Image, p.Category)
	return err
}
