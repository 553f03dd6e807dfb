package llm

import "context"

// Message is one turn of a conversation, provider-agnostic. Role is "system",
// "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

// LLMProvider abstracts the chat model behind the advisor. Implementations
// exist for Gemini and Ollama.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate is single-prompt convenience over Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
