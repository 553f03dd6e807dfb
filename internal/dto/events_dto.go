package dto

import "github.com/google/uuid"

// PublishEmbedProductMessage is the payload for the embed-product topic.
type PublishEmbedProductMessage struct {
	ProductId uuid.UUID `json:"product_id"`
}

// Mail job kinds for the async mail topic.
const (
	MailKindInquiryNotification = "inquiry_notification"
	MailKindInquiryConfirmation = "inquiry_confirmation"
	MailKindNewsletterWelcome   = "newsletter_welcome"
)

// PublishMailMessage is the payload for the send-mail topic.
type PublishMailMessage struct {
	Kind      string    `json:"kind"`
	InquiryId uuid.UUID `json:"inquiry_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// AdminNotification is pushed to connected admin dashboards.
type AdminNotification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	RefId   string `json:"ref_id,omitempty"`
}
