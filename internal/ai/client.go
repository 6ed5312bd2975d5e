package ai

import "context"

// The embedding and text-generation models are external black boxes.
// Business logic depends only on these two capabilities so any backing
// provider can be substituted.

// Embedder turns text into a fixed-length dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GenerationConfig bounds a single text-generation call.
type GenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
	StopSequences []string `json:"stopSequences"`
}

// DefaultGenerationConfig mirrors the settings the product was tuned
// with. StopSequences stays nil; callers add their own markers.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MaxTokenCount: 1024,
		Temperature:   0.7,
		TopP:          0.9,
		StopSequences: []string{},
	}
}

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}
