package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByMood matches primary_mood case-insensitively.
type ByMood struct {
	Mood string
}

func (s ByMood) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(primary_mood) = ?", strings.ToLower(s.Mood))
}

// ByEnergy matches energy_level case-insensitively.
type ByEnergy struct {
	Energy string
}

func (s ByEnergy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(energy_level) = ?", strings.ToLower(s.Energy))
}

// MissingPoster selects movies that still need enrichment.
type MissingPoster struct{}

func (s MissingPoster) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("poster_url IS NULL OR poster_url = ''")
}

// TitleSearch is a case-insensitive substring match on title.
type TitleSearch struct {
	Query string
}

func (s TitleSearch) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s.Query)+"%")
}

// MoodOrTitles selects movies of a mood plus any of the given titles,
// all case-insensitive.
type MoodOrTitles struct {
	Mood   string
	Titles []string
}

func (s MoodOrTitles) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Titles) == 0 {
		return db.Where("LOWER(primary_mood) = ?", strings.ToLower(s.Mood))
	}
	return db.Where("LOWER(primary_mood) = ? OR LOWER(title) IN ?", strings.ToLower(s.Mood), lowerAll(s.Titles))
}

// MoodOrEnergy selects every movie the matcher could pick for one search: the
// requested mood, plus the energy level used for relaxation.
type MoodOrEnergy struct {
	Mood   string
	Energy string
}

func (s MoodOrEnergy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(primary_mood) = ? OR LOWER(energy_level) = ?",
		strings.ToLower(s.Mood), strings.ToLower(s.Energy))
}

// TitlesIn matches any of the given titles, case-insensitive.
type TitlesIn struct {
	Titles []string
}

func (s TitlesIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Titles) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where("LOWER(title) IN ?", lowerAll(s.Titles))
}

func lowerAll(titles []string) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return out
}
