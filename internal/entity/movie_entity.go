package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a catalog record. PosterUrl is the only field the recommendation
// pipeline mutates after creation.
type Movie struct {
	Id                 uuid.UUID
	Title              string
	Year               int
	Description        string
	DurationMinutes    int
	PrimaryMood        string
	EnergyLevel        string
	Genres             []string
	Tags               []string
	Director           string
	Cast               []string
	ImdbRating         *float64
	PosterUrl          string
	Platform           string
	StreamingProviders []string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

func (m *Movie) HasPoster() bool {
	return m.PosterUrl != ""
}

// Clone returns a shallow copy safe to hand to another goroutine for field writes.
func (m *Movie) Clone() *Movie {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
