package recommend

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"

	"moodmovie-be/internal/constant"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/pkg/inference"
)

// MaxPromptLength is measured in runes.
const MaxPromptLength = 500

// Input is raw user input: either a mood/energy selection or a free-text prompt.
// A non-empty Prompt wins over the selection.
type Input struct {
	Mood        string
	Energy      string
	TimeMinutes *int
	Prompt      string
}

type moodAnalysis struct {
	Mood        string `json:"mood"`
	Energy      string `json:"energy"`
	TimeMinutes *int   `json:"time_minutes,omitempty"`
	Nuance      string `json:"nuance,omitempty"`
}

type Resolver struct {
	inference inference.Service
	log       logger.ILogger
}

func NewResolver(svc inference.Service, log logger.ILogger) *Resolver {
	return &Resolver{inference: svc, log: log}
}

// Resolve turns input into criteria with mood and energy always set. Free-text
// analysis that cannot produce an in-domain answer fails with ErrInference.
func (r *Resolver) Resolve(ctx context.Context, in Input) (SearchCriteria, error) {
	if strings.TrimSpace(in.Prompt) != "" {
		return r.resolvePrompt(ctx, in.Prompt)
	}

	mood, ok := ParseMood(in.Mood)
	if !ok {
		return SearchCriteria{}, fmt.Errorf("%w: unknown mood %q", ErrValidation, in.Mood)
	}
	energy, ok := ParseEnergy(in.Energy)
	if !ok {
		return SearchCriteria{}, fmt.Errorf("%w: unknown energy %q", ErrValidation, in.Energy)
	}
	return SearchCriteria{
		Mood:        mood,
		Energy:      energy,
		TimeMinutes: positiveOrNil(in.TimeMinutes),
	}, nil
}

func (r *Resolver) resolvePrompt(ctx context.Context, raw string) (SearchCriteria, error) {
	text, err := SanitizePrompt(raw)
	if err != nil {
		return SearchCriteria{}, err
	}

	var analysis moodAnalysis
	err = r.inference.Invoke(ctx, inference.Request{
		Prompt: fmt.Sprintf(constant.MoodAnalysisPrompt, text,
			strings.Join(MoodStrings(), ", "), strings.Join(EnergyStrings(), ", ")),
		Schema: moodAnalysisSchema(),
	}, &analysis)
	if err != nil {
		r.log.Warn("Resolver", "Mood analysis failed", map[string]interface{}{"error": err.Error()})
		return SearchCriteria{}, fmt.Errorf("analyze mood: %w", err)
	}

	mood, ok := ParseMood(analysis.Mood)
	if !ok {
		return SearchCriteria{}, fmt.Errorf("%w: mood %q outside domain", ErrInference, analysis.Mood)
	}
	energy, ok := ParseEnergy(analysis.Energy)
	if !ok {
		return SearchCriteria{}, fmt.Errorf("%w: energy %q outside domain", ErrInference, analysis.Energy)
	}

	r.log.Debug("Resolver", "Mood resolved from prompt", map[string]interface{}{
		"mood":   mood,
		"energy": energy,
	})

	return SearchCriteria{
		Mood:        mood,
		Energy:      energy,
		TimeMinutes: positiveOrNil(analysis.TimeMinutes),
		Nuance:      strings.TrimSpace(analysis.Nuance),
	}, nil
}

// SanitizePrompt trims the prompt, rejects angle brackets and caps it at
// MaxPromptLength runes.
func SanitizePrompt(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrValidation)
	}
	if strings.ContainsAny(text, "<>") {
		return "", fmt.Errorf("%w: prompt contains disallowed characters", ErrValidation)
	}
	if utf8.RuneCountInString(text) > MaxPromptLength {
		text = strings.TrimSpace(string([]rune(text)[:MaxPromptLength]))
	}
	return text, nil
}

func moodAnalysisSchema() *jsonschema.Schema {
	return inference.Object([]string{"mood", "energy"}, map[string]*jsonschema.Schema{
		"mood":         inference.StringEnum(MoodStrings()...),
		"energy":       inference.StringEnum(EnergyStrings()...),
		"time_minutes": inference.Integer(),
		"nuance":       inference.String(),
	})
}

func positiveOrNil(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	n := *v
	return &n
}
