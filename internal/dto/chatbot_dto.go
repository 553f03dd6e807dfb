package dto

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	SessionId string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Language  string        `json:"language"`
}

type ChatResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
}
