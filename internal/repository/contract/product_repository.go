package contract

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindBySku loads a product with its association rows and their categories.
	FindBySku(ctx context.Context, sku string) (*entity.Product, error)

	// CountActiveFeaturedExcluding counts active featured products other than
	// the given SKU. Backs the 10-slot featured gate.
	CountActiveFeaturedExcluding(ctx context.Context, sku string) (int64, error)
}
