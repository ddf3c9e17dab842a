package huggingface

import (
	"context"

	"moodmovie-be/pkg/llm"
	"moodmovie-be/pkg/llm/openai"
)

// DefaultRouterURL is the OpenAI-compatible inference router.
const DefaultRouterURL = "https://router.huggingface.co/v1"

// defaultMaxTokens keeps router calls from running into provider-side defaults
// that truncate a five-movie JSON batch.
const defaultMaxTokens = 1500

// HuggingFaceProvider sends chat completions through the Hugging Face router.
type HuggingFaceProvider struct {
	inner *openai.OpenAIProvider
}

var _ llm.LLMProvider = &HuggingFaceProvider{}

func NewHuggingFaceProvider(apiKey, baseURL, model string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = DefaultRouterURL
	}
	return &HuggingFaceProvider{inner: openai.NewOpenAIProvider(apiKey, baseURL, model)}
}

func (p *HuggingFaceProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := append([]llm.Option{llm.WithMaxTokens(defaultMaxTokens)}, options...)
	return p.inner.Chat(ctx, history, opts...)
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
