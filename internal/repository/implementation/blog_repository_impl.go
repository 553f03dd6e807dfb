package implementation

import (
	"context"
	"errors"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/mapper"
	"placid-catalog-be/internal/model"
	"placid-catalog-be/internal/repository/contract"
	"placid-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BlogMapper
}

func NewBlogRepository(db *gorm.DB) contract.BlogRepository {
	return &BlogRepositoryImpl{
		db:     db,
		mapper: mapper.NewBlogMapper(),
	}
}

func (r *BlogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, post *entity.BlogPost) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, post *entity.BlogPost) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BlogPost{}, id).Error
}

func (r *BlogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	var m model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BlogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	var models []*model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BlogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BlogPost{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
