package entity

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

type ContactInquiry struct {
	Id         uuid.UUID
	Name       string
	Email      string
	Phone      *string
	Company    *string
	Subject    string
	Message    string
	ProductSku *string
	Language   string
	Status     InquiryStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
