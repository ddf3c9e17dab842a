package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/pkg/llm/huggingface"
	"moodmovie-be/pkg/llm/ollama"
	"moodmovie-be/pkg/llm/openai"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(ProviderConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	o, ok := p.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434", o.BaseURL)

	p, err = NewLLMProvider(ProviderConfig{Provider: "openai", Model: "gpt-4o-mini", APIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, p)

	p, err = NewLLMProvider(ProviderConfig{Provider: "huggingface", Model: "m", APIKey: "hf"})
	require.NoError(t, err)
	assert.IsType(t, &huggingface.HuggingFaceProvider{}, p)
}

func TestNewLLMProvider_Errors(t *testing.T) {
	for _, cfg := range []ProviderConfig{
		{Provider: "openai"},
		{Provider: "huggingface"},
		{Provider: "gemini", APIKey: "x"},
	} {
		_, err := NewLLMProvider(cfg)
		assert.Error(t, err, cfg.Provider)
	}
}
