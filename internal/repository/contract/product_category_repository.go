package contract

import (
	"context"

	"placid-catalog-be/internal/entity"

	"github.com/google/uuid"
)

type ProductCategoryRepository interface {
	DeleteByProductId(ctx context.Context, productId uuid.UUID) error
	CreateBulk(ctx context.Context, links []*entity.ProductCategory) error
	FindByProductId(ctx context.Context, productId uuid.UUID) ([]*entity.ProductCategory, error)

	// CountActiveProducts counts distinct active products linked to the
	// category. Feeds the recount procedure.
	CountActiveProducts(ctx context.Context, categoryId uuid.UUID) (int64, error)
}
