package implementation

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/mapper"
	"placid-catalog-be/internal/model"
	"placid-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ProductEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductEmbeddingRepository(db *gorm.DB) contract.ProductEmbeddingRepository {
	return &ProductEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductEmbeddingRepositoryImpl) DeleteByProductId(ctx context.Context, productId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productId).
		Delete(&model.ProductEmbedding{}).Error
}

func (r *ProductEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.ProductEmbedding, 0, len(embeddings))
	for _, e := range embeddings {
		models = append(models, r.mapper.EmbeddingToModel(e))
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ProductEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductEmbedding{}).Count(&count).Error
	return count, err
}

// SearchNearest ranks chunks by cosine distance, then dedupes to product ids
// keeping the best-ranked chunk per product. Only active products surface.
func (r *ProductEmbeddingRepositoryImpl) SearchNearest(ctx context.Context, vector []float32, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.ProductEmbedding
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = product_embeddings.product_id").
		Where("products.active = ?", true).
		Where("products.deleted_at IS NULL").
		Where("product_embeddings.deleted_at IS NULL").
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(vector))).
		Limit(limit * 4).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, limit)
	for _, m := range models {
		if seen[m.ProductId] {
			continue
		}
		seen[m.ProductId] = true
		ids = append(ids, m.ProductId)
		if len(ids) >= limit {
			break
		}
	}
	return ids, nil
}
