package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/pkg/inference"
)

func TestResolve_SelectionPassesThrough(t *testing.T) {
	svc := respondWith(`{}`)
	r := NewResolver(svc, nopLog)

	got, err := r.Resolve(context.Background(), Input{Mood: "Cozy", Energy: "low", TimeMinutes: intPtr(60)})

	require.NoError(t, err)
	assert.Equal(t, MoodCozy, got.Mood)
	assert.Equal(t, EnergyLow, got.Energy)
	require.NotNil(t, got.TimeMinutes)
	assert.Equal(t, 60, *got.TimeMinutes)
	assert.Zero(t, svc.callCount(), "selection must not call inference")
}

func TestResolve_SelectionWithoutTimeHasNoPreference(t *testing.T) {
	r := NewResolver(respondWith(`{}`), nopLog)

	got, err := r.Resolve(context.Background(), Input{Mood: "sad", Energy: "low", TimeMinutes: intPtr(0)})

	require.NoError(t, err)
	assert.Nil(t, got.TimeMinutes)
	assert.Equal(t, DefaultMinutes, got.TargetMinutes())
}

func TestResolve_InvalidSelection(t *testing.T) {
	r := NewResolver(respondWith(`{}`), nopLog)

	tests := []struct {
		name  string
		input Input
	}{
		{"unknown mood", Input{Mood: "grumpy", Energy: "low"}},
		{"unknown energy", Input{Mood: "happy", Energy: "frantic"}},
		{"half populated", Input{Mood: "happy"}},
		{"empty", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResolve_FreeTextFeedsMatcher(t *testing.T) {
	svc := respondWith(`{"mood":"silly","energy":"medium"}`)
	r := NewResolver(svc, nopLog)

	criteria, err := r.Resolve(context.Background(), Input{Prompt: "I had a terrible day, want to laugh"})
	require.NoError(t, err)
	assert.Contains(t, []Mood{MoodHappy, MoodSilly}, criteria.Mood)
	assert.Equal(t, EnergyMedium, criteria.Energy)
	assert.Nil(t, criteria.TimeMinutes)

	require.Equal(t, 1, svc.callCount())
	req := svc.calls[0]
	assert.Contains(t, req.Prompt, "I had a terrible day, want to laugh")
	assert.NotNil(t, req.Schema)
	assert.ElementsMatch(t, []string{"mood", "energy"}, req.Schema.Required)

	catalog := append(happyCatalog(), movie("Hot Fuzz", "silly", "medium", 121), movie("Airplane!", "silly", "medium", 88))
	got := Match(catalog, criteria, nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "Airplane!", got[0].Title)
	assert.Contains(t, titles(got), "Hot Fuzz")
}

func TestResolve_PromptWinsOverSelection(t *testing.T) {
	svc := respondWith(`{"mood":"thrilling","energy":"high","time_minutes":120,"nuance":"heist"}`)
	r := NewResolver(svc, nopLog)

	got, err := r.Resolve(context.Background(), Input{Mood: "sad", Energy: "low", Prompt: "something like Ocean's Eleven"})

	require.NoError(t, err)
	assert.Equal(t, MoodThrilling, got.Mood)
	assert.Equal(t, EnergyHigh, got.Energy)
	require.NotNil(t, got.TimeMinutes)
	assert.Equal(t, 120, *got.TimeMinutes)
	assert.Equal(t, "heist", got.Nuance)
}

func TestResolve_OutOfDomainAnswerIsInferenceError(t *testing.T) {
	r := NewResolver(respondWith(`{"mood":"nostalgic","energy":"low"}`), nopLog)

	_, err := r.Resolve(context.Background(), Input{Prompt: "remind me of childhood"})

	assert.ErrorIs(t, err, ErrInference)
}

func TestResolve_FailedInferenceIsInferenceError(t *testing.T) {
	cause := errors.New("connection refused")
	r := NewResolver(failWith(errors.Join(inference.ErrInference, cause)), nopLog)

	_, err := r.Resolve(context.Background(), Input{Prompt: "whatever"})

	assert.ErrorIs(t, err, ErrInference)
}

func TestResolve_PromptIsCapped(t *testing.T) {
	svc := respondWith(`{"mood":"bored","energy":"low"}`)
	r := NewResolver(svc, nopLog)

	long := strings.Repeat("é", MaxPromptLength+100)
	_, err := r.Resolve(context.Background(), Input{Prompt: "  " + long + "  "})

	require.NoError(t, err)
	sent := svc.calls[0].Prompt
	assert.Contains(t, sent, strings.Repeat("é", MaxPromptLength))
	assert.NotContains(t, sent, strings.Repeat("é", MaxPromptLength+1))
}

func TestSanitizePrompt(t *testing.T) {
	_, err := SanitizePrompt("<script>alert(1)</script>")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = SanitizePrompt("   ")
	assert.ErrorIs(t, err, ErrValidation)

	got, err := SanitizePrompt("  tired but curious  ")
	require.NoError(t, err)
	assert.Equal(t, "tired but curious", got)
}
