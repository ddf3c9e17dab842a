package dto

import (
	"time"

	"github.com/google/uuid"
)

type HistoryResponse struct {
	Id            uuid.UUID `json:"id"`
	MovieId       uuid.UUID `json:"movie_id"`
	MovieTitle    string    `json:"movie_title"`
	MovieYear     int       `json:"movie_year"`
	MoodContext   string    `json:"mood_context"`
	EnergyContext string    `json:"energy_context"`
	Action        string    `json:"action"`
	Timestamp     time.Time `json:"timestamp"`
	IsFavorite    bool      `json:"is_favorite"`
}

type ListHistoryRequest struct {
	Action    string `query:"action" validate:"omitempty,oneof=watched skipped"`
	Favorites bool   `query:"favorites"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

type FavoriteRequest struct {
	Id         uuid.UUID
	IsFavorite *bool `json:"is_favorite" validate:"required"`
}
