package mapper

import (
	"time"

	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ProductMapper struct {
	categoryMapper *CategoryMapper
}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{categoryMapper: NewCategoryMapper()}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Product{
		Id:            p.Id,
		Sku:           p.Sku,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		DescriptionEn: p.DescriptionEn,
		DescriptionTh: p.DescriptionTh,
		Category:      p.Category,
		Supplier:      p.Supplier,
		Images:        p.Images,
		Pdfs:          p.Pdfs,
		Active:        p.Active,
		HasPricing:    p.HasPricing,
		Featured:      p.Featured,
		SourceURL:     p.SourceURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}

	for i := range p.Categories {
		e.Categories = append(e.Categories, m.AssociationToEntity(&p.Categories[i]))
	}

	return e
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:            p.Id,
		Sku:           p.Sku,
		TitleEn:       p.TitleEn,
		TitleTh:       p.TitleTh,
		DescriptionEn: p.DescriptionEn,
		DescriptionTh: p.DescriptionTh,
		Category:      p.Category,
		Supplier:      p.Supplier,
		Images:        p.Images,
		Pdfs:          p.Pdfs,
		Active:        p.Active,
		HasPricing:    p.HasPricing,
		Featured:      p.Featured,
		SourceURL:     p.SourceURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) AssociationToEntity(pc *model.ProductCategory) *entity.ProductCategory {
	if pc == nil {
		return nil
	}
	return &entity.ProductCategory{
		ProductId:  pc.ProductId,
		CategoryId: pc.CategoryId,
		IsPrimary:  pc.IsPrimary,
		Category:   m.categoryMapper.ToEntity(pc.Category),
	}
}

func (m *ProductMapper) AssociationToModel(pc *entity.ProductCategory) *model.ProductCategory {
	if pc == nil {
		return nil
	}
	return &model.ProductCategory{
		ProductId:  pc.ProductId,
		CategoryId: pc.CategoryId,
		IsPrimary:  pc.IsPrimary,
	}
}

func (m *ProductMapper) EmbeddingToEntity(pe *model.ProductEmbedding) *entity.ProductEmbedding {
	if pe == nil {
		return nil
	}
	return &entity.ProductEmbedding{
		Id:             pe.Id,
		Document:       pe.Document,
		EmbeddingValue: pe.EmbeddingValue.Slice(),
		ProductId:      pe.ProductId,
		ChunkIndex:     pe.ChunkIndex,
		CreatedAt:      pe.CreatedAt,
	}
}

func (m *ProductMapper) EmbeddingToModel(pe *entity.ProductEmbedding) *model.ProductEmbedding {
	if pe == nil {
		return nil
	}
	return &model.ProductEmbedding{
		Id:             pe.Id,
		Document:       pe.Document,
		EmbeddingValue: pgvector.NewVector(pe.EmbeddingValue),
		ProductId:      pe.ProductId,
		ChunkIndex:     pe.ChunkIndex,
		CreatedAt:      pe.CreatedAt,
	}
}
