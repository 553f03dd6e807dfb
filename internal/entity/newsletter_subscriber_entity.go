package entity

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscriber struct {
	Id        uuid.UUID
	Email     string
	Name      *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
