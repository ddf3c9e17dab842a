package dto

import (
	"time"

	"github.com/google/uuid"
)

// SearchRequest carries either a mood/energy selection or a free-text prompt.
// When both are present the prompt wins.
type SearchRequest struct {
	Mood        string `json:"mood" validate:"omitempty,mood"`
	Energy      string `json:"energy" validate:"omitempty,energy"`
	TimeMinutes *int   `json:"time_minutes" validate:"omitempty,min=1,max=600"`
	Prompt      string `json:"prompt" validate:"omitempty,max=500,excludesall=<>"`
}

type CriteriaResponse struct {
	Mood        string `json:"mood"`
	Energy      string `json:"energy"`
	TimeMinutes *int   `json:"time_minutes,omitempty"`
	Nuance      string `json:"nuance,omitempty"`
}

type MovieResponse struct {
	Id                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Year               int       `json:"year"`
	Description        string    `json:"description"`
	DurationMinutes    int       `json:"duration_minutes"`
	PrimaryMood        string    `json:"primary_mood"`
	EnergyLevel        string    `json:"energy_level"`
	Genres             []string  `json:"genres"`
	Tags               []string  `json:"tags"`
	Director           string    `json:"director,omitempty"`
	Cast               []string  `json:"cast,omitempty"`
	ImdbRating         *float64  `json:"imdb_rating,omitempty"`
	PosterUrl          string    `json:"poster_url,omitempty"`
	Platform           string    `json:"platform,omitempty"`
	StreamingProviders []string  `json:"streaming_providers,omitempty"`
}

type SearchResponse struct {
	SessionId  string           `json:"session_id"`
	Criteria   CriteriaResponse `json:"criteria"`
	Movies     []*MovieResponse `json:"movies"`
	Expanded   bool             `json:"expanded"`
	Suggestion string           `json:"suggestion,omitempty"` // set when Movies is empty
}

type ShareCardResponse struct {
	Headline string `json:"headline"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Genre    string `json:"genre,omitempty"`
	Mood     string `json:"mood"`
	Energy   string `json:"energy"`
}

type WatchResponse struct {
	Event     *HistoryResponse  `json:"event"`
	ShareCard ShareCardResponse `json:"share_card"`
	Saved     bool              `json:"saved"`
}

type SkipResponse struct {
	Remaining  int    `json:"remaining"`
	Exhausted  bool   `json:"exhausted"`
	Suggestion string `json:"suggestion,omitempty"`
}

// EnrichmentJobMessage is the payload on the poster enrichment topic.
type EnrichmentJobMessage struct {
	SessionId string      `json:"session_id"`
	MovieIds  []uuid.UUID `json:"movie_ids"`
	QueuedAt  time.Time   `json:"queued_at"`
}

type PosterUpdateMessage struct {
	MovieId   uuid.UUID `json:"movie_id"`
	PosterUrl string    `json:"poster_url"`
}
