package questiongen

import (
	"context"
	"fmt"

	"github.com/abhisek/geomiz/internal/llm"
)

// Config holds generation limits.
type Config struct {
	MaxTokens     int
	Temperature   float64
	MaxExcerptLen int
}

// DefaultConfig returns the standard checkpoint generation config.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     512,
		Temperature:   0.7,
		MaxExcerptLen: 1200,
	}
}

// Generator produces checkpoint questions through an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator. The provider should already carry the retry
// decorator; Generate makes a single logical attempt.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate requests one candidate payload for the given section.
// The response text may wrap the JSON in conversation; the first balanced
// object is extracted and coerced. Callers run the validator chain on the
// result — a nil error here does not mean the payload is acceptable.
func (g *Generator) Generate(ctx context.Context, input Input) (*Payload, error) {
	ctx = llm.WithPurpose(ctx, "checkpoint-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.cfg)},
		},
		Schema:      PayloadSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("checkpoint generation: %w", err)
	}

	text := string(resp.Content)
	raw, ok := ExtractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object in response")
	}

	p, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	return p, nil
}
