package catalog

import (
	"context"

	"cafecart/internal/domain"
)

// Repository is the read side of the product catalog. Lookups by id return
// domain.ErrNotFound on absence; GetToppings silently omits unknown ids.
type Repository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListSizes(ctx context.Context) ([]domain.Size, error)
	GetSize(ctx context.Context, id string) (*domain.Size, error)
	ListToppings(ctx context.Context) ([]domain.Topping, error)
	GetToppings(ctx context.Context, ids []string) ([]domain.Topping, error)
}

// Writer is the admin/import side of the catalog.
type Writer interface {
	UpsertProduct(ctx context.Context, p domain.Product) error
	UpsertSize(ctx context.Context, s domain.Size) error
	UpsertTopping(ctx context.Context, t domain.Topping) error
}
