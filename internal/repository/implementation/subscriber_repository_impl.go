package implementation

import (
	"context"
	"errors"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/mapper"
	"placid-catalog-be/internal/model"
	"placid-catalog-be/internal/repository/contract"
	"placid-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriberMapper
}

func NewSubscriberRepository(db *gorm.DB) contract.SubscriberRepository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriberMapper(),
	}
}

func (r *SubscriberRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	m := r.mapper.ToModel(subscriber)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscriber = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriberRepositoryImpl) Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	m := r.mapper.ToModel(subscriber)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscriber = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriberRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	var m model.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NewsletterSubscriber, error) {
	var models []*model.NewsletterSubscriber
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SubscriberRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NewsletterSubscriber{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
