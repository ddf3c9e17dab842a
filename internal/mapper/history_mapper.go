package mapper

import (
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.HistoryEvent) *entity.HistoryEvent {
	if h == nil {
		return nil
	}
	return &entity.HistoryEvent{
		Id:            h.Id,
		SessionId:     h.SessionId,
		MovieId:       h.MovieId,
		MovieTitle:    h.MovieTitle,
		MovieYear:     h.MovieYear,
		MoodContext:   h.MoodContext,
		EnergyContext: h.EnergyContext,
		Action:        h.Action,
		Timestamp:     h.Timestamp,
		IsFavorite:    h.IsFavorite,
	}
}

func (m *HistoryMapper) ToModel(h *entity.HistoryEvent) *model.HistoryEvent {
	if h == nil {
		return nil
	}
	return &model.HistoryEvent{
		Id:            h.Id,
		SessionId:     h.SessionId,
		MovieId:       h.MovieId,
		MovieTitle:    h.MovieTitle,
		MovieYear:     h.MovieYear,
		MoodContext:   h.MoodContext,
		EnergyContext: h.EnergyContext,
		Action:        h.Action,
		Timestamp:     h.Timestamp,
		IsFavorite:    h.IsFavorite,
	}
}

func (m *HistoryMapper) ToEntities(events []*model.HistoryEvent) []*entity.HistoryEvent {
	entities := make([]*entity.HistoryEvent, len(events))
	for i, h := range events {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
