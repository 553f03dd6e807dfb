package contract

import (
	"context"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.ContactInquiry) error
	Update(ctx context.Context, inquiry *entity.ContactInquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactInquiry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactInquiry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
