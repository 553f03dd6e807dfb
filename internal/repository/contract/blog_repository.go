package contract

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
