package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactInquiry struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	Phone      *string   `gorm:"type:varchar(50)"`
	Company    *string   `gorm:"type:varchar(255)"`
	Subject    string    `gorm:"type:varchar(500);not null"`
	Message    string    `gorm:"type:text;not null"`
	ProductSku *string   `gorm:"type:varchar(100)"`
	Language   string    `gorm:"type:varchar(5);not null;default:'en'"`
	Status     string    `gorm:"type:varchar(20);not null;default:'new';index"` // new | replied | closed
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}
