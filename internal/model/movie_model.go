package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Movie struct {
	Id                 uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title              string                      `gorm:"type:varchar(255);not null;index"`
	Year               int                         `gorm:"not null"`
	Description        string                      `gorm:"type:text"`
	DurationMinutes    int                         `gorm:"not null;default:0"`
	PrimaryMood        string                      `gorm:"type:varchar(32);not null;index"`
	EnergyLevel        string                      `gorm:"type:varchar(16);not null;index"`
	Genres             datatypes.JSONSlice[string] `gorm:"type:json"`
	Tags               datatypes.JSONSlice[string] `gorm:"type:json"`
	Director           string                      `gorm:"type:varchar(255)"`
	Cast               datatypes.JSONSlice[string] `gorm:"type:json"`
	ImdbRating         *float64
	PosterUrl          string                      `gorm:"type:text"`
	Platform           string                      `gorm:"type:varchar(128)"`
	StreamingProviders datatypes.JSONSlice[string] `gorm:"type:json"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
