package provider

import "context"

// Provider abstracts the hosted embedding and text-generation service.
// Consumers such as retrieval and the answer pipeline use this interface
// instead of depending on the concrete Gemini client, so tests can swap in
// doubles without network access.
type Provider interface {
	// Embed returns the embedding vector for the given text using the specified model.
	Embed(ctx context.Context, model string, text string) ([]float32, error)

	// EmbedBatch returns embedding vectors for multiple texts, preserving
	// input order and count. An empty input yields a nil result and nil error.
	EmbedBatch(ctx context.Context, model string, texts []string) ([][]float32, error)

	// GenerateText sends a system instruction and a user prompt to the given
	// model and returns the generated text.
	GenerateText(ctx context.Context, model string, systemInstruction string, prompt string) (string, error)

	// IsReachable reports whether the provider API answers with the configured credentials.
	IsReachable(ctx context.Context) bool

	// ListModels returns the names of the models available to the API key.
	ListModels(ctx context.Context) ([]string, error)
}
