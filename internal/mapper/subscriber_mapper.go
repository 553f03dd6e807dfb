package mapper

import (
	"time"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/model"
)

type SubscriberMapper struct{}

func NewSubscriberMapper() *SubscriberMapper {
	return &SubscriberMapper{}
}

func (m *SubscriberMapper) ToEntity(s *model.NewsletterSubscriber) *entity.NewsletterSubscriber {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.NewsletterSubscriber{
		Id:        s.Id,
		Email:     s.Email,
		Name:      s.Name,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SubscriberMapper) ToModel(s *entity.NewsletterSubscriber) *model.NewsletterSubscriber {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.NewsletterSubscriber{
		Id:        s.Id,
		Email:     s.Email,
		Name:      s.Name,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SubscriberMapper) ToEntities(subs []*model.NewsletterSubscriber) []*entity.NewsletterSubscriber {
	entities := make([]*entity.NewsletterSubscriber, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
