package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
	ProductSku string `json:"product_sku"`
	Language   string `json:"language"`
}

type CreateInquiryResponse struct {
	InquiryId uuid.UUID `json:"inquiry_id"`
}

type UpdateInquiryRequest struct {
	Id           uuid.UUID `json:"-"`
	Status       string    `json:"status"`
	ReplyMessage string    `json:"reply_message"`
}

type InquiryResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	Company    *string    `json:"company"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	ProductSku *string    `json:"product_sku"`
	Language   string     `json:"language"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
