package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory is the explicit join row between products and categories.
// At most one row per product carries IsPrimary=true.
type ProductCategory struct {
	ProductId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryId uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsPrimary  bool      `gorm:"not null;default:false"`
	Product    *Product  `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
	Category   *Category `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
