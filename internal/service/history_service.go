package service

import (
	"context"
	"fmt"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/recommend"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryPageSize = 50

type IHistoryService interface {
	List(ctx context.Context, sessionId string, req *dto.ListHistoryRequest) ([]*dto.HistoryResponse, error)
	Clear(ctx context.Context, sessionId string) error
	SetFavorite(ctx context.Context, sessionId string, req *dto.FavoriteRequest) (*dto.HistoryResponse, error)
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	logger     logger.ILogger
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, log logger.ILogger) IHistoryService {
	return &historyService{uowFactory: uowFactory, sessions: sessions, logger: log}
}

func (s *historyService) List(ctx context.Context, sessionId string, req *dto.ListHistoryRequest) ([]*dto.HistoryResponse, error) {
	specs := []specification.Specification{specification.BySession{SessionID: sessionId}}
	if req.Action != "" {
		specs = append(specs, specification.ByAction{Action: req.Action})
	}
	if req.Favorites {
		specs = append(specs, specification.FavoritesOnly{})
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryPageSize
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: req.Offset})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.HistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("%w: list history: %v", recommend.ErrPersistence, err)
	}

	res := make([]*dto.HistoryResponse, 0, len(events))
	for _, e := range events {
		res = append(res, toHistoryResponse(e))
	}
	return res, nil
}

// Clear deletes the session's history and the exclusions it produced.
func (s *historyService) Clear(ctx context.Context, sessionId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.HistoryRepository().DeleteBySession(ctx, sessionId); err != nil {
		return fmt.Errorf("%w: clear history: %v", recommend.ErrPersistence, err)
	}
	if session, ok := s.sessions.Get(sessionId); ok {
		session.ResetExclusions()
	}
	s.logger.Info("HistoryService", "History cleared", map[string]interface{}{"session_id": sessionId})
	return nil
}

// SetFavorite toggles the flag and returns the stored state. When the write fails
// the authoritative record is re-read so the caller can revert its local change.
func (s *historyService) SetFavorite(ctx context.Context, sessionId string, req *dto.FavoriteRequest) (*dto.HistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.HistoryRepository()
	owned := []specification.Specification{
		specification.ByID{ID: req.Id},
		specification.BySession{SessionID: sessionId},
	}

	event, err := repo.FindOne(ctx, owned...)
	if err != nil {
		return nil, fmt.Errorf("%w: find history: %v", recommend.ErrPersistence, err)
	}
	if event == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "History entry not found")
	}

	if err := repo.SetFavorite(ctx, req.Id, *req.IsFavorite); err != nil {
		s.logger.Error("HistoryService", "Failed to toggle favorite", map[string]interface{}{
			"history_id": req.Id.String(),
			"error":      err.Error(),
		})
		if current, findErr := repo.FindOne(ctx, owned...); findErr == nil && current != nil {
			return toHistoryResponse(current), fmt.Errorf("%w: set favorite: %v", recommend.ErrPersistence, err)
		}
		return nil, fmt.Errorf("%w: set favorite: %v", recommend.ErrPersistence, err)
	}

	event.IsFavorite = *req.IsFavorite
	return toHistoryResponse(event), nil
}
