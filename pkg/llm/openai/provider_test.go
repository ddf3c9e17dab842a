package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/pkg/llm"
)

func TestGenerate_RequestsJSONObject(t *testing.T) {
	var got goopenai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(goopenai.ChatCompletionResponse{
			Choices: []goopenai.ChatCompletionChoice{{
				Message: goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: `{"mood":"cozy"}`},
			}},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider("sk-test", srv.URL, "gpt-4o-mini")
	out, err := p.Generate(context.Background(), "rainy day", llm.WithJSONMode())

	require.NoError(t, err)
	assert.Equal(t, `{"mood":"cozy"}`, out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, goopenai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIProvider("sk-test", srv.URL, "m").Generate(context.Background(), "x")

	assert.Error(t, err)
}
