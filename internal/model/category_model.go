package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NameEn        string         `gorm:"type:varchar(255);not null"`
	NameTh        string         `gorm:"type:varchar(255);not null"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	DescriptionEn string         `gorm:"type:text"`
	DescriptionTh string         `gorm:"type:text"`
	Active        bool           `gorm:"not null;default:true;index"`
	Order         int            `gorm:"column:sort_order;not null;default:0"`
	ProductCount  int            `gorm:"not null;default:0"`
	ParentId      *uuid.UUID     `gorm:"type:uuid;index"`
	Parent        *Category      `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
	Children      []Category     `gorm:"foreignKey:ParentId"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}
