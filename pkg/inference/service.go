// Package inference turns a free-form LLM backend into a typed oracle: a prompt plus
// a JSON schema in, a schema-conformant value out.
package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"moodmovie-be/pkg/llm"
)

var (
	// ErrInference marks any failed or non-conformant generative call.
	ErrInference = errors.New("inference failed")
	// ErrSchemaMismatch is returned (wrapped in ErrInference) when the model answered
	// but the answer does not validate against the requested schema.
	ErrSchemaMismatch = errors.New("response does not match schema")
)

// Request is a single structured generation request.
type Request struct {
	Prompt             string
	Schema             *jsonschema.Schema
	UseInternetContext bool
}

// Service is the contract consumed by the recommendation pipeline.
type Service interface {
	Invoke(ctx context.Context, req Request, out any) error
}

type llmService struct {
	provider    llm.LLMProvider
	temperature float64
}

// NewService wraps an LLM provider. temperature is applied to every call.
func NewService(provider llm.LLMProvider, temperature float64) Service {
	return &llmService{provider: provider, temperature: temperature}
}

func (s *llmService) Invoke(ctx context.Context, req Request, out any) error {
	if req.Schema == nil {
		return fmt.Errorf("%w: request without schema", ErrInference)
	}
	resolved, err := req.Schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("%w: resolve schema: %v", ErrInference, err)
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInference, err)
	}

	raw, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(s.temperature), llm.WithJSONMode())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInference, err)
	}

	return decode(raw, resolved, out)
}

func buildPrompt(req Request) (string, error) {
	schemaJSON, err := json.MarshalIndent(req.Schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(req.Prompt))
	b.WriteString("\n\n")
	if req.UseInternetContext {
		b.WriteString("Use what you know from public web sources such as TMDb, Wikipedia and IMDb. Do not guess URLs you have not seen.\n\n")
	}
	b.WriteString("<output_format>\n")
	b.WriteString("Respond with ONLY a valid JSON object that conforms to this JSON Schema:\n")
	b.Write(schemaJSON)
	b.WriteString("\n</output_format>")
	return b.String(), nil
}

// decode validates the raw model answer and unmarshals it into out.
func decode(raw string, resolved *jsonschema.Resolved, out any) error {
	content := extractJSON(raw)
	if content == "" {
		return fmt.Errorf("%w: %w: no JSON object found", ErrInference, ErrSchemaMismatch)
	}

	var instance any
	if err := json.Unmarshal([]byte(content), &instance); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrInference, ErrSchemaMismatch, err)
	}
	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrInference, ErrSchemaMismatch, err)
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrInference, ErrSchemaMismatch, err)
	}
	return nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
