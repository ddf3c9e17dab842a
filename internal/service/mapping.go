package service

import (
	"fmt"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/entity"
	"moodmovie-be/pkg/recommend"
)

func toMovieResponse(m *entity.Movie) *dto.MovieResponse {
	return &dto.MovieResponse{
		Id:                 m.Id,
		Title:              m.Title,
		Year:               m.Year,
		Description:        m.Description,
		DurationMinutes:    m.DurationMinutes,
		PrimaryMood:        m.PrimaryMood,
		EnergyLevel:        m.EnergyLevel,
		Genres:             m.Genres,
		Tags:               m.Tags,
		Director:           m.Director,
		Cast:               m.Cast,
		ImdbRating:         m.ImdbRating,
		PosterUrl:          m.PosterUrl,
		Platform:           m.Platform,
		StreamingProviders: m.StreamingProviders,
	}
}

func toMovieResponses(movies []*entity.Movie) []*dto.MovieResponse {
	out := make([]*dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func toHistoryResponse(e *entity.HistoryEvent) *dto.HistoryResponse {
	if e == nil {
		return nil
	}
	return &dto.HistoryResponse{
		Id:            e.Id,
		MovieId:       e.MovieId,
		MovieTitle:    e.MovieTitle,
		MovieYear:     e.MovieYear,
		MoodContext:   e.MoodContext,
		EnergyContext: e.EnergyContext,
		Action:        e.Action,
		Timestamp:     e.Timestamp,
		IsFavorite:    e.IsFavorite,
	}
}

func toCriteriaResponse(c recommend.SearchCriteria) dto.CriteriaResponse {
	return dto.CriteriaResponse{
		Mood:        string(c.Mood),
		Energy:      string(c.Energy),
		TimeMinutes: c.TimeMinutes,
		Nuance:      c.Nuance,
	}
}

func toShareCard(m *entity.Movie, c recommend.SearchCriteria) dto.ShareCardResponse {
	card := dto.ShareCardResponse{
		Headline: fmt.Sprintf("I was feeling %s with %s energy...", c.Mood, c.Energy),
		Title:    m.Title,
		Year:     m.Year,
		Mood:     string(c.Mood),
		Energy:   string(c.Energy),
	}
	if len(m.Genres) > 0 {
		card.Genre = m.Genres[0]
	}
	return card
}
