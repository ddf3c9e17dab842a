package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	HistoryActionWatched = "watched"
	HistoryActionSkipped = "skipped"
)

type HistoryEvent struct {
	Id            uuid.UUID
	SessionId     string
	MovieId       uuid.UUID
	MovieTitle    string
	MovieYear     int
	MoodContext   string
	EnergyContext string
	Action        string
	Timestamp     time.Time
	IsFavorite    bool
}
