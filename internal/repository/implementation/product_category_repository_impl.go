package implementation

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/mapper"
	"placid-catalog-be/internal/model"
	"placid-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductCategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductCategoryRepository(db *gorm.DB) contract.ProductCategoryRepository {
	return &ProductCategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductCategoryRepositoryImpl) DeleteByProductId(ctx context.Context, productId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productId).
		Delete(&model.ProductCategory{}).Error
}

func (r *ProductCategoryRepositoryImpl) CreateBulk(ctx context.Context, links []*entity.ProductCategory) error {
	if len(links) == 0 {
		return nil
	}
	models := make([]*model.ProductCategory, 0, len(links))
	for _, link := range links {
		models = append(models, r.mapper.AssociationToModel(link))
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ProductCategoryRepositoryImpl) FindByProductId(ctx context.Context, productId uuid.UUID) ([]*entity.ProductCategory, error) {
	var models []*model.ProductCategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("product_id = ?", productId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	links := make([]*entity.ProductCategory, 0, len(models))
	for _, m := range models {
		links = append(links, r.mapper.AssociationToEntity(m))
	}
	return links, nil
}

func (r *ProductCategoryRepositoryImpl) CountActiveProducts(ctx context.Context, categoryId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductCategory{}).
		Joins("JOIN products ON products.id = product_categories.product_id").
		Where("product_categories.category_id = ?", categoryId).
		Where("products.active = ?", true).
		Where("products.deleted_at IS NULL").
		Distinct("product_categories.product_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
