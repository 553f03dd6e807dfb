package store

// ChatTurn is one message in a chatbot conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Session is the chatbot conversation state kept between requests.
type Session struct {
	ID       string     `json:"id"`
	Language string     `json:"language"` // "en" | "th"
	History  []ChatTurn `json:"history"`

	// SKUs surfaced by the last retrieval, so follow-up questions can refer
	// back to "the second one".
	LastProductSkus []string `json:"last_product_skus"`

	LastQuery string `json:"last_query"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
