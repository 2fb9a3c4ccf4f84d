package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
	Sizes       []string
	Stock       int
	Rating      float64
	ReviewCount int
}

// Apply inserts the demo catalog. It is idempotent: re-running updates
// existing rows in place, keyed by product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range catalog {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price_cents, image_url, category, sizes, stock, rating, review_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image_url = EXCLUDED.image_url,
    category = EXCLUDED.category,
    sizes = EXCLUDED.sizes,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    review_count = EXCLUDED.review_count
`
	_, err := pool.Exec(ctx, q,
		p.Name, p.Description, p.PriceCents, p.ImageURL, p.Category,
		p.Sizes, p.Stock, p.Rating, p.ReviewCount,
	)
	return err
}

var catalog = []productSeed{
	{
		Name:        "Classic Cotton T-Shirt",
		Description: "100% cotton crew neck t-shirt, perfect for everyday wear.",
		PriceCents:  1999,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       50,
		Rating:      4.5,
		ReviewCount: 120,
	},
	{
		Name:        "Denim Jacket",
		Description: "Classic blue denim jacket with button front closure.",
		PriceCents:  5999,
		ImageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5",
		Category:    "Men",
		Sizes:       []string{"M", "L", "XL"},
		Stock:       30,
		Rating:      4.7,
		ReviewCount: 85,
	},
	{
		Name:        "Chino Pants",
		Description: "Comfortable chino pants perfect for casual and semi-formal occasions.",
		PriceCents:  3999,
		ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       40,
		Rating:      4.6,
		ReviewCount: 95,
	},
	{
		Name:        "Hooded Sweatshirt",
		Description: "Warm and comfortable hoodie with front pocket.",
		PriceCents:  4499,
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       35,
		Rating:      4.8,
		ReviewCount: 110,
	},
	{
		Name:        "Formal Dress Shirt",
		Description: "Premium cotton dress shirt for formal occasions.",
		PriceCents:  3499,
		ImageURL:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       25,
		Rating:      4.4,
		ReviewCount: 60,
	},
	{
		Name:        "Cargo Shorts",
		Description: "Comfortable cargo shorts with multiple pockets.",
		PriceCents:  2999,
		ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L"},
		Stock:       45,
		Rating:      4.3,
		ReviewCount: 75,
	},
	{
		Name:        "Leather Belt",
		Description: "Genuine leather belt with classic buckle.",
		PriceCents:  2499,
		ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       60,
		Rating:      4.6,
		ReviewCount: 140,
	},
	{
		Name:        "Floral Summer Dress",
		Description: "Light and breezy floral print dress for summer.",
		PriceCents:  4999,
		ImageURL:    "https://images.unsplash.com/photo-1567095761054-7a02e69e5c43",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       30,
		Rating:      4.7,
		ReviewCount: 105,
	},
	{
		Name:        "High-Waist Jeans",
		Description: "Stylish high-waist jeans with stretch fabric.",
		PriceCents:  5499,
		ImageURL:    "https://images.unsplash.com/photo-1541099649105-f69ad21f3246",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       35,
		Rating:      4.8,
		ReviewCount: 130,
	},
	{
		Name:        "Knit Sweater",
		Description: "Soft knit sweater perfect for cooler weather.",
		PriceCents:  3999,
		ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       40,
		Rating:      4.5,
		ReviewCount: 90,
	},
	{
		Name:        "Elegance Blouse",
		Description: "Silk blend blouse with delicate details.",
		PriceCents:  4299,
		ImageURL:    "https://images.unsplash.com/photo-1595777457583-95e059d581b8",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       25,
		Rating:      4.6,
		ReviewCount: 70,
	},
	{
		Name:        "Active Leggings",
		Description: "High-performance leggings for workouts and casual wear.",
		PriceCents:  3299,
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       50,
		Rating:      4.7,
		ReviewCount: 115,
	},
	{
		Name:        "Cardigan Wrap",
		Description: "Cozy cardigan wrap for layering.",
		PriceCents:  4799,
		ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       30,
		Rating:      4.4,
		ReviewCount: 65,
	},
	{
		Name:        "Maxi Skirt",
		Description: "Flowery maxi skirt with comfortable elastic waist.",
		PriceCents:  3799,
		ImageURL:    "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       35,
		Rating:      4.5,
		ReviewCount: 80,
	},
	{
		Name:        "Kids Graphic Tee",
		Description: "Fun graphic t-shirt for kids with cartoon prints.",
		PriceCents:  1499,
		ImageURL:    "https://images.unsplash.com/photo-1594744803329-e58b31de8bf5",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       60,
		Rating:      4.6,
		ReviewCount: 95,
	},
	{
		Name:        "Children's Hoodie",
		Description: "Warm and comfortable hoodie for children.",
		PriceCents:  2999,
		ImageURL:    "https://images.unsplash.com/photo-1519241047957-be31d7379a5d",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       45,
		Rating:      4.7,
		ReviewCount: 100,
	},
	{
		Name:        "Kids Denim Jeans",
		Description: "Durable denim jeans for active kids.",
		PriceCents:  2499,
		ImageURL:    "https://images.unsplash.com/photo-1544441893-675973e31985",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       40,
		Rating:      4.5,
		ReviewCount: 75,
	},
	{
		Name:        "Children's Pajama Set",
		Description: "Soft and comfortable pajama set for kids.",
		PriceCents:  1999,
		ImageURL:    "https://images.unsplash.com/photo-1576871337622-98d48d1cf531",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       55,
		Rating:      4.8,
		ReviewCount: 120,
	},
	{
		Name:        "Kids Winter Jacket",
		Description: "Warm winter jacket with water-resistant material.",
		PriceCents:  3999,
		ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       30,
		Rating:      4.6,
		ReviewCount: 85,
	},
	{
		Name:        "Children's Shorts",
		Description: "Comfortable cotton shorts for playtime.",
		PriceCents:  1699,
		ImageURL:    "https://images.unsplash.com/photo-1584735174914-6b1272458e3e",
		Category:    "Kids",
		Sizes:       []string{"S", "M", "L"},
		Stock:       65,
		Rating:      4.4,
		ReviewCount: 70,
	},
	{
		Name:        "Polo Shirt",
		Description: "Classic polo shirt with embroidered logo.",
		PriceCents:  2799,
		ImageURL:    "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d",
		Category:    "Men",
		Sizes:       []string{"S", "M", "L", "XL"},
		Stock:       40,
		Rating:      4.5,
		ReviewCount: 88,
	},
	{
		Name:        "Summer Skirt",
		Description: "Light and airy skirt perfect for summer days.",
		PriceCents:  3499,
		ImageURL:    "https://images.unsplash.com/photo-1565383671287-16e5d14a35e1",
		Category:    "Women",
		Sizes:       []string{"S", "M", "L"},
		Stock:       30,
		Rating:      4.6,
		ReviewCount: 92,
	},
}
