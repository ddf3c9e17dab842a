package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/pkg/recommend"
)

func historyEvent(sessionId, title, action string) *entity.HistoryEvent {
	return &entity.HistoryEvent{
		Id:         uuid.New(),
		SessionId:  sessionId,
		MovieId:    uuid.New(),
		MovieTitle: title,
		Action:     action,
		Timestamp:  time.Now(),
	}
}

func boolPtr(v bool) *bool { return &v }

func TestHistoryService_ListFiltersBySession(t *testing.T) {
	history := &fakeHistoryRepo{events: []*entity.HistoryEvent{
		historyEvent("s1", "Chef", entity.HistoryActionWatched),
		historyEvent("s1", "Paddington 2", entity.HistoryActionSkipped),
		historyEvent("s2", "Heat", entity.HistoryActionWatched),
	}}
	svc := NewHistoryService(&fakeFactory{movies: &fakeMovieRepo{}, history: history}, memory.NewSessionRepository(time.Hour), nopLog)

	all, err := svc.List(context.Background(), "s1", &dto.ListHistoryRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Paddington 2", all[0].MovieTitle, "newest first")

	watched, err := svc.List(context.Background(), "s1", &dto.ListHistoryRequest{Action: entity.HistoryActionWatched})
	require.NoError(t, err)
	require.Len(t, watched, 1)
	assert.Equal(t, "Chef", watched[0].MovieTitle)
}

func TestHistoryService_ClearResetsExclusions(t *testing.T) {
	history := &fakeHistoryRepo{events: []*entity.HistoryEvent{historyEvent("s1", "Chef", entity.HistoryActionWatched)}}
	sessions := memory.NewSessionRepository(time.Hour)
	sessions.GetOrCreate("s1").Exclude("Chef")
	svc := NewHistoryService(&fakeFactory{movies: &fakeMovieRepo{}, history: history}, sessions, nopLog)

	require.NoError(t, svc.Clear(context.Background(), "s1"))

	assert.Empty(t, history.events)
	session, _ := sessions.Get("s1")
	assert.False(t, session.Exclusions(nil).Has("Chef"))
}

func TestHistoryService_SetFavorite(t *testing.T) {
	event := historyEvent("s1", "Chef", entity.HistoryActionWatched)
	history := &fakeHistoryRepo{events: []*entity.HistoryEvent{event}}
	svc := NewHistoryService(&fakeFactory{movies: &fakeMovieRepo{}, history: history}, memory.NewSessionRepository(time.Hour), nopLog)
	ctx := context.Background()

	res, err := svc.SetFavorite(ctx, "s1", &dto.FavoriteRequest{Id: event.Id, IsFavorite: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)
	assert.True(t, history.events[0].IsFavorite)

	_, err = svc.SetFavorite(ctx, "s2", &dto.FavoriteRequest{Id: event.Id, IsFavorite: boolPtr(false)})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe, "other sessions cannot touch the entry")
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestHistoryService_SetFavoriteFailureReturnsStoredState(t *testing.T) {
	event := historyEvent("s1", "Chef", entity.HistoryActionWatched)
	history := &fakeHistoryRepo{events: []*entity.HistoryEvent{event}, favoriteErr: errors.New("db down")}
	svc := NewHistoryService(&fakeFactory{movies: &fakeMovieRepo{}, history: history}, memory.NewSessionRepository(time.Hour), nopLog)

	res, err := svc.SetFavorite(context.Background(), "s1", &dto.FavoriteRequest{Id: event.Id, IsFavorite: boolPtr(true)})

	assert.True(t, errors.Is(err, recommend.ErrPersistence))
	require.NotNil(t, res)
	assert.False(t, res.IsFavorite)
}
