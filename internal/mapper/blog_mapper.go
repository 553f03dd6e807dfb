package mapper

import (
	"time"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/model"
)

type BlogMapper struct{}

func NewBlogMapper() *BlogMapper {
	return &BlogMapper{}
}

func (m *BlogMapper) ToEntity(p *model.BlogPost) *entity.BlogPost {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.BlogPost{
		Id:            p.Id,
		Slug:          p.Slug,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		ExcerptEn:     p.ExcerptEn,
		ExcerptTh:     p.ExcerptTh,
		ContentEn:     p.ContentEn,
		ContentTh:     p.ContentTh,
		Author:        p.Author,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          p.Tags,
		ReadingTime:   p.ReadingTime,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BlogMapper) ToModel(p *entity.BlogPost) *model.BlogPost {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.BlogPost{
		Id:            p.Id,
		Slug:          p.Slug,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		ExcerptEn:     p.ExcerptEn,
		ExcerptTh:     p.ExcerptTh,
		ContentEn:     p.ContentEn,
		ContentTh:     p.ContentTh,
		Author:        p.Author,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          p.Tags,
		ReadingTime:   p.ReadingTime,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BlogMapper) ToEntities(posts []*model.BlogPost) []*entity.BlogPost {
	entities := make([]*entity.BlogPost, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
