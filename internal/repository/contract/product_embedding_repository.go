package contract

import (
	"context"

	"placid-catalog-be/internal/entity"

	"github.com/google/uuid"
)

type ProductEmbeddingRepository interface {
	DeleteByProductId(ctx context.Context, productId uuid.UUID) error
	CreateBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) error
	Count(ctx context.Context) (int64, error)

	// SearchNearest returns distinct product ids ordered by cosine distance
	// to the query vector.
	SearchNearest(ctx context.Context, vector []float32, limit int) ([]uuid.UUID, error)
}
