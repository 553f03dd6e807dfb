package contract

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/specification"
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
	Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NewsletterSubscriber, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
