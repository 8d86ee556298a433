package seed

import (
	"context"
	"fmt"

	"cafecart/internal/domain"
	"cafecart/internal/repository/catalog"
)

// Apply inserts the demo coffee-shop catalog. It is idempotent via upserts.
func Apply(ctx context.Context, repo catalog.Writer) error {
	products := []domain.Product{
		{ID: "p1", Name: "Black Coffee", Image: "/img/black-coffee.jpg", BasePrice: 25000},
		{ID: "p2", Name: "Milk Coffee", Image: "/img/milk-coffee.jpg", BasePrice: 29000},
		{ID: "p3", Name: "Egg Coffee", Image: "/img/egg-coffee.jpg", BasePrice: 35000},
		{ID: "p4", Name: "Coconut Cold Brew", Image: "/img/coconut-cold-brew.jpg", BasePrice: 45000},
		{ID: "p5", Name: "Peach Tea", Image: "/img/peach-tea.jpg", BasePrice: 39000},
		{ID: "p6", Name: "Matcha Latte", Image: "/img/matcha-latte.jpg", BasePrice: 49000},
	}
	sizes := []domain.Size{
		{ID: "s1", Name: "Small", PriceAdd: 0},
		{ID: "s2", Name: "Medium", PriceAdd: 5000},
		{ID: "s3", Name: "Large", PriceAdd: 10000},
	}
	toppings := []domain.Topping{
		{ID: "t1", Name: "Black Pearl", Price: 10000},
		{ID: "t2", Name: "White Pearl", Price: 10000},
		{ID: "t3", Name: "Flan Pudding", Price: 12000},
		{ID: "t4", Name: "Salted Cream", Price: 15000},
		{ID: "t5", Name: "Grass Jelly", Price: 8000},
	}

	for _, p := range products {
		if err := repo.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	for _, s := range sizes {
		if err := repo.UpsertSize(ctx, s); err != nil {
			return fmt.Errorf("upsert size %s: %w", s.ID, err)
		}
	}
	for _, t := range toppings {
		if err := repo.UpsertTopping(ctx, t); err != nil {
			return fmt.Errorf("upsert topping %s: %w", t.ID, err)
		}
	}
	return nil
}
