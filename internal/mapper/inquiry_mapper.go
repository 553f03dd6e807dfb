package mapper

import (
	"time"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/model"
)

type InquiryMapper struct{}

func NewInquiryMapper() *InquiryMapper {
	return &InquiryMapper{}
}

func (m *InquiryMapper) ToEntity(i *model.ContactInquiry) *entity.ContactInquiry {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.ContactInquiry{
		Id:         i.Id,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Company:    i.Company,
		Subject:    i.Subject,
		Message:    i.Message,
		ProductSku: i.ProductSku,
		Language:   i.Language,
		Status:     entity.InquiryStatus(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *InquiryMapper) ToModel(i *entity.ContactInquiry) *model.ContactInquiry {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.ContactInquiry{
		Id:         i.Id,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Company:    i.Company,
		Subject:    i.Subject,
		Message:    i.Message,
		ProductSku: i.ProductSku,
		Language:   i.Language,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *InquiryMapper) ToEntities(inquiries []*model.ContactInquiry) []*entity.ContactInquiry {
	entities := make([]*entity.ContactInquiry, len(inquiries))
	for i, inq := range inquiries {
		entities[i] = m.ToEntity(inq)
	}
	return entities
}
