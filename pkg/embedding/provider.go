package embedding

// EmbeddingProvider turns text into a vector. taskType distinguishes
// documents being indexed (RETRIEVAL_DOCUMENT) from queries being searched
// (RETRIEVAL_QUERY); providers that make no such distinction ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
