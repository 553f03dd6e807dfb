package dto

import "time"

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type SubscribeResponse struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriberResponse struct {
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
