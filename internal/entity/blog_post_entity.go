package entity

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	Id            uuid.UUID
	Slug          string
	TitleEn       string
	TitleTh       string
	ExcerptEn     string
	ExcerptTh     string
	ContentEn     string
	ContentTh     string
	Author        string
	FeaturedImage *string
	Category      string
	Tags          []string
	ReadingTime   int
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
