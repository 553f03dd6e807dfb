package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	NameEn        string     `json:"name_en" validate:"required"`
	NameTh        string     `json:"name_th" validate:"required"`
	Slug          string     `json:"slug" validate:"required"`
	DescriptionEn string     `json:"description_en"`
	DescriptionTh string     `json:"description_th"`
	Active        *bool      `json:"active"`
	Order         int        `json:"order"`
	ParentId      *uuid.UUID `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Id            uuid.UUID  `json:"-"`
	NameEn        string     `json:"name_en" validate:"required"`
	NameTh        string     `json:"name_th" validate:"required"`
	Slug          string     `json:"slug" validate:"required"`
	DescriptionEn string     `json:"description_en"`
	DescriptionTh string     `json:"description_th"`
	Active        *bool      `json:"active"`
	Order         *int       `json:"order"`
	ParentId      *uuid.UUID `json:"parent_id"`
}

type CategoryResponse struct {
	Id            uuid.UUID  `json:"id"`
	NameEn        string     `json:"name_en"`
	NameTh        string     `json:"name_th"`
	Slug          string     `json:"slug"`
	DescriptionEn string     `json:"description_en"`
	DescriptionTh string     `json:"description_th"`
	Active        bool       `json:"active"`
	Order         int        `json:"order"`
	ProductCount  int        `json:"product_count"`
	ParentId      *uuid.UUID `json:"parent_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// CategoryTreeResponse is a CategoryResponse with its active children
// attached recursively.
type CategoryTreeResponse struct {
	CategoryResponse
	Children []*CategoryTreeResponse `json:"children"`
}
