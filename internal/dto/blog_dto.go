package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBlogPostRequest struct {
	Slug          string   `json:"slug" validate:"required"`
	TitleEn       string   `json:"title_en" validate:"required"`
	TitleTh       string   `json:"title_th" validate:"required"`
	ExcerptEn     string   `json:"excerpt_en"`
	ExcerptTh     string   `json:"excerpt_th"`
	ContentEn     string   `json:"content_en" validate:"required"`
	ContentTh     string   `json:"content_th" validate:"required"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags"`
	ReadingTime   int      `json:"reading_time"`
	Published     bool     `json:"published"`
}

type UpdateBlogPostRequest struct {
	Id            uuid.UUID `json:"-"`
	Slug          string    `json:"slug" validate:"required"`
	TitleEn       string    `json:"title_en" validate:"required"`
	TitleTh       string    `json:"title_th" validate:"required"`
	ExcerptEn     string    `json:"excerpt_en"`
	ExcerptTh     string    `json:"excerpt_th"`
	ContentEn     string    `json:"content_en" validate:"required"`
	ContentTh     string    `json:"content_th" validate:"required"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featured_image"`
	Category      string    `json:"category" validate:"required"`
	Tags          []string  `json:"tags"`
	ReadingTime   int       `json:"reading_time"`
}

type BlogPostResponse struct {
	Id            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	TitleEn       string     `json:"title_en"`
	TitleTh       string     `json:"title_th"`
	ExcerptEn     string     `json:"excerpt_en"`
	ExcerptTh     string     `json:"excerpt_th"`
	ContentEn     string     `json:"content_en"`
	ContentTh     string     `json:"content_th"`
	Author        string     `json:"author"`
	FeaturedImage *string    `json:"featured_image"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	ReadingTime   int        `json:"reading_time"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
