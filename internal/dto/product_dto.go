package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Sku           string   `json:"sku" validate:"required"`
	TitleEn       string   `json:"title_en" validate:"required"`
	TitleTh       string   `json:"title_th" validate:"required"`
	DescriptionEn string   `json:"description_en"`
	DescriptionTh string   `json:"description_th"`
	Category      string   `json:"category"`
	Supplier      string   `json:"supplier"`
	SourceURL     string   `json:"source_url"`
	Active        *bool    `json:"active"`
	HasPricing    bool     `json:"has_pricing"`
	Images        []string `json:"images"`
	Pdfs          []string `json:"pdfs"`
}

type UpdateProductRequest struct {
	Sku           string   `json:"-"`
	TitleEn       string   `json:"title_en" validate:"required"`
	TitleTh       string   `json:"title_th" validate:"required"`
	DescriptionEn string   `json:"description_en"`
	DescriptionTh string   `json:"description_th"`
	Supplier      string   `json:"supplier"`
	SourceURL     string   `json:"source_url"`
	Active        *bool    `json:"active"`
	HasPricing    *bool    `json:"has_pricing"`
	Images        []string `json:"images"`
	Pdfs          []string `json:"pdfs"`
}

// AssignCategoriesRequest reassigns a product's categories. PrimaryCategory
// must be a member of Categories.
type AssignCategoriesRequest struct {
	Sku             string      `json:"-"`
	Categories      []uuid.UUID `json:"categories" validate:"required,min=1"`
	PrimaryCategory uuid.UUID   `json:"primary_category" validate:"required"`
}

type ToggleFeaturedRequest struct {
	Sku      string `json:"-"`
	Featured *bool  `json:"featured" validate:"required"`
}

type ProductCategoryResponse struct {
	CategoryId uuid.UUID         `json:"category_id"`
	IsPrimary  bool              `json:"is_primary"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

type ProductResponse struct {
	Id            uuid.UUID                  `json:"id"`
	Sku           string                     `json:"sku"`
	TitleEn       string                     `json:"title_en"`
	TitleTh       string                     `json:"title_th"`
	DescriptionEn string                     `json:"description_en"`
	DescriptionTh string                     `json:"description_th"`
	Category      string                     `json:"category"`
	Supplier      *string                    `json:"supplier"`
	Images        []string                   `json:"images"`
	Pdfs          []string                   `json:"pdfs"`
	Active        bool                       `json:"active"`
	HasPricing    bool                       `json:"has_pricing"`
	Featured      bool                       `json:"featured"`
	SourceURL     *string                    `json:"source_url"`
	Categories    []*ProductCategoryResponse `json:"categories,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     *time.Time                 `json:"updated_at"`
}

type ListProductsQuery struct {
	Page              int
	Limit             int
	Search            string
	Category          string
	SortBy            string
	SortOrder         string
	IncludeCategories bool
	IncludeInactive   bool
}

type PaginatedProductsResponse struct {
	Products   []*ProductResponse `json:"products"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
