package model

import (
	"time"

	"github.com/google/uuid"
)

type HistoryEvent struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId     string    `gorm:"type:varchar(64);not null;index"`
	MovieId       uuid.UUID `gorm:"type:uuid;index"`
	MovieTitle    string    `gorm:"type:varchar(255);not null"`
	MovieYear     int
	MoodContext   string    `gorm:"type:varchar(32)"`
	EnergyContext string    `gorm:"type:varchar(16)"`
	Action        string    `gorm:"type:varchar(16);not null;index"`
	Timestamp     time.Time `gorm:"column:recorded_at;not null;index"`
	IsFavorite    bool      `gorm:"not null;default:false"`
}

func (HistoryEvent) TableName() string {
	return "history_events"
}
