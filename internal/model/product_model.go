package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Sku           string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	TitleEn       string                      `gorm:"type:varchar(500);not null"`
	TitleTh       string                      `gorm:"type:varchar(500);not null"`
	DescriptionEn string                      `gorm:"type:text"`
	DescriptionTh string                      `gorm:"type:text"`
	Category      string                      `gorm:"type:varchar(255);index"` // primary category name_en, written with the association rows
	Supplier      *string                     `gorm:"type:varchar(255);index"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Pdfs          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Active        bool                        `gorm:"not null;default:true;index"`
	HasPricing    bool                        `gorm:"not null;default:false"`
	Featured      bool                        `gorm:"not null;default:false;index"`
	SourceURL     *string                     `gorm:"type:text"`
	Categories    []ProductCategory           `gorm:"foreignKey:ProductId"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt              `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
