package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID
	Sku           string
	TitleEn       string
	TitleTh       string
	DescriptionEn string
	DescriptionTh string
	Category      string // primary category name_en
	Supplier      *string
	Images        []string
	Pdfs          []string
	Active        bool
	HasPricing    bool
	Featured      bool
	SourceURL     *string
	Categories    []*ProductCategory
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// ProductCategory links a product to one category.
type ProductCategory struct {
	ProductId  uuid.UUID
	CategoryId uuid.UUID
	IsPrimary  bool
	Category   *Category
}

type ProductEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	ProductId      uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
}
