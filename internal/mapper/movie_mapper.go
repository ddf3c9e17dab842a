package mapper

import (
	"time"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/model"
)

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

func (m *MovieMapper) ToEntity(mv *model.Movie) *entity.Movie {
	if mv == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mv.UpdatedAt.IsZero() {
		t := mv.UpdatedAt
		updatedAt = &t
	}

	return &entity.Movie{
		Id:                 mv.Id,
		Title:              mv.Title,
		Year:               mv.Year,
		Description:        mv.Description,
		DurationMinutes:    mv.DurationMinutes,
		PrimaryMood:        mv.PrimaryMood,
		EnergyLevel:        mv.EnergyLevel,
		Genres:             []string(mv.Genres),
		Tags:               []string(mv.Tags),
		Director:           mv.Director,
		Cast:               []string(mv.Cast),
		ImdbRating:         mv.ImdbRating,
		PosterUrl:          mv.PosterUrl,
		Platform:           mv.Platform,
		StreamingProviders: []string(mv.StreamingProviders),
		CreatedAt:          mv.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *MovieMapper) ToModel(mv *entity.Movie) *model.Movie {
	if mv == nil {
		return nil
	}

	var updatedAt time.Time
	if mv.UpdatedAt != nil {
		updatedAt = *mv.UpdatedAt
	}

	return &model.Movie{
		Id:                 mv.Id,
		Title:              mv.Title,
		Year:               mv.Year,
		Description:        mv.Description,
		DurationMinutes:    mv.DurationMinutes,
		PrimaryMood:        mv.PrimaryMood,
		EnergyLevel:        mv.EnergyLevel,
		Genres:             mv.Genres,
		Tags:               mv.Tags,
		Director:           mv.Director,
		Cast:               mv.Cast,
		ImdbRating:         mv.ImdbRating,
		PosterUrl:          mv.PosterUrl,
		Platform:           mv.Platform,
		StreamingProviders: mv.StreamingProviders,
		CreatedAt:          mv.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *MovieMapper) ToEntities(movies []*model.Movie) []*entity.Movie {
	entities := make([]*entity.Movie, len(movies))
	for i, mv := range movies {
		entities[i] = m.ToEntity(mv)
	}
	return entities
}

func (m *MovieMapper) ToModels(movies []*entity.Movie) []*model.Movie {
	models := make([]*model.Movie, len(movies))
	for i, mv := range movies {
		models[i] = m.ToModel(mv)
	}
	return models
}
