package contract

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindBySlugExcept returns a category with the given slug whose id is not
	// exceptId (uuid.Nil means "no exception"). Used for the collision check.
	FindBySlugExcept(ctx context.Context, slug string, exceptId uuid.UUID) (*entity.Category, error)

	// UpdateProductCount overwrites the denormalized counter only.
	UpdateProductCount(ctx context.Context, id uuid.UUID, count int) error
}
