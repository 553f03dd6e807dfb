package mapper

import (
	"time"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Category{
		Id:            c.Id,
		NameEn:        c.NameEn,
		NameTh:        c.NameTh,
		Slug:          c.Slug,
		DescriptionEn: c.DescriptionEn,
		DescriptionTh: c.DescriptionTh,
		Active:        c.Active,
		Order:         c.Order,
		ProductCount:  c.ProductCount,
		ParentId:      c.ParentId,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}

	for i := range c.Children {
		e.Children = append(e.Children, m.ToEntity(&c.Children[i]))
	}

	return e
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Category{
		Id:            c.Id,
		NameEn:        c.NameEn,
		NameTh:        c.NameTh,
		Slug:          c.Slug,
		DescriptionEn: c.DescriptionEn,
		DescriptionTh: c.DescriptionTh,
		Active:        c.Active,
		Order:         c.Order,
		ProductCount:  c.ProductCount,
		ParentId:      c.ParentId,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
