package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogPost struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug          string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	TitleEn       string                      `gorm:"type:varchar(500);not null"`
	TitleTh       string                      `gorm:"type:varchar(500);not null"`
	ExcerptEn     string                      `gorm:"type:text"`
	ExcerptTh     string                      `gorm:"type:text"`
	ContentEn     string                      `gorm:"type:text;not null"`
	ContentTh     string                      `gorm:"type:text;not null"`
	Author        string                      `gorm:"type:varchar(255)"`
	FeaturedImage *string                     `gorm:"type:text"`
	Category      string                      `gorm:"type:varchar(255);not null"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ReadingTime   int                         `gorm:"default:0"`
	Published     bool                        `gorm:"not null;default:false;index"`
	PublishedAt   *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
