package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/recommend"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const tryDifferentSettings = "Try different settings"

type IRecommendationService interface {
	Search(ctx context.Context, sessionId string, req *dto.SearchRequest) (*dto.SearchResponse, error)
	Watch(ctx context.Context, sessionId string, movieId uuid.UUID) (*dto.WatchResponse, error)
	Skip(ctx context.Context, sessionId string, movieId uuid.UUID) (*dto.SkipResponse, error)
	Current(ctx context.Context, sessionId string) (*dto.SearchResponse, error)
}

type RecommendationOptions struct {
	Cooldown time.Duration
	Now      func() time.Time
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	resolver   *recommend.Resolver
	expander   *recommend.Expander
	recorder   *recommend.Recorder
	publisher  IPublisherService
	logger     logger.ILogger
	opts       RecommendationOptions
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	resolver *recommend.Resolver,
	expander *recommend.Expander,
	recorder *recommend.Recorder,
	publisher IPublisherService,
	log logger.ILogger,
	opts RecommendationOptions,
) IRecommendationService {
	if opts.Cooldown <= 0 {
		opts.Cooldown = recommend.DefaultCooldown
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &recommendationService{
		uowFactory: uowFactory,
		sessions:   sessions,
		resolver:   resolver,
		expander:   expander,
		recorder:   recorder,
		publisher:  publisher,
		logger:     log,
		opts:       opts,
	}
}

func (s *recommendationService) Search(ctx context.Context, sessionId string, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	session := s.sessions.GetOrCreate(sessionId)

	if ok, wait := session.AllowSearch(s.opts.Now(), s.opts.Cooldown); !ok {
		return nil, &recommend.RateLimitedError{Wait: wait}
	}

	criteria, err := s.resolver.Resolve(ctx, recommend.Input{
		Mood:        req.Mood,
		Energy:      req.Energy,
		TimeMinutes: req.TimeMinutes,
		Prompt:      req.Prompt,
	})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	excluded := session.Exclusions(s.historyTitles(ctx, uow, sessionId))

	catalog, err := uow.MovieRepository().FindAll(ctx, specification.MoodOrEnergy{
		Mood:   string(criteria.Mood),
		Energy: string(criteria.Energy),
	})
	if err != nil {
		s.logger.Error("RecommendationService", "Failed to load catalog", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("%w: load catalog: %v", recommend.ErrPersistence, err)
	}

	results := recommend.Match(catalog, criteria, excluded)
	expanded := false
	if len(results) < recommend.MinResults {
		final, err := s.expander.Expand(ctx, uow.MovieRepository(), criteria, excluded)
		if err != nil {
			s.logger.Warn("RecommendationService", "Catalog expansion failed, using existing matches", map[string]interface{}{
				"session_id": sessionId,
				"matches":    len(results),
				"error":      err.Error(),
			})
		} else {
			results = final
			expanded = true
		}
	}

	session.SetResults(criteria, results)
	s.queueEnrichment(ctx, sessionId, results)

	s.logger.Info("RecommendationService", "Search completed", map[string]interface{}{
		"session_id": sessionId,
		"mood":       criteria.Mood,
		"energy":     criteria.Energy,
		"results":    len(results),
		"expanded":   expanded,
	})

	res := &dto.SearchResponse{
		SessionId: sessionId,
		Criteria:  toCriteriaResponse(criteria),
		Movies:    toMovieResponses(results),
		Expanded:  expanded,
	}
	if len(results) == 0 {
		res.Suggestion = tryDifferentSettings
	}
	return res, nil
}

func (s *recommendationService) Watch(ctx context.Context, sessionId string, movieId uuid.UUID) (*dto.WatchResponse, error) {
	session, movie, criteria, err := s.pick(sessionId, movieId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.recorder.Record(ctx, uow.HistoryRepository(), session, movie, criteria, entity.HistoryActionWatched)
	if err != nil && !errors.Is(err, recommend.ErrPersistence) {
		return nil, err
	}

	return &dto.WatchResponse{
		Event:     toHistoryResponse(event),
		ShareCard: toShareCard(movie, criteria),
		Saved:     err == nil,
	}, nil
}

func (s *recommendationService) Skip(ctx context.Context, sessionId string, movieId uuid.UUID) (*dto.SkipResponse, error) {
	session, movie, criteria, err := s.pick(sessionId, movieId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.recorder.Record(ctx, uow.HistoryRepository(), session, movie, criteria, entity.HistoryActionSkipped); err != nil {
		return nil, err
	}

	remaining := len(session.Results())
	res := &dto.SkipResponse{Remaining: remaining, Exhausted: remaining == 0}
	if res.Exhausted {
		res.Suggestion = tryDifferentSettings
	}
	return res, nil
}

func (s *recommendationService) Current(ctx context.Context, sessionId string) (*dto.SearchResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "No active recommendations for this session")
	}
	criteria, ok := session.Criteria()
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "No active recommendations for this session")
	}
	results := session.Results()
	res := &dto.SearchResponse{
		SessionId: sessionId,
		Criteria:  toCriteriaResponse(criteria),
		Movies:    toMovieResponses(results),
	}
	if len(results) == 0 {
		res.Suggestion = tryDifferentSettings
	}
	return res, nil
}

// pick resolves a decision target from the session's current results.
func (s *recommendationService) pick(sessionId string, movieId uuid.UUID) (*recommend.Session, *entity.Movie, recommend.SearchCriteria, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, nil, recommend.SearchCriteria{}, fiber.NewError(fiber.StatusNotFound, "No active recommendations for this session")
	}
	movie, ok := session.FindResult(movieId)
	if !ok {
		return nil, nil, recommend.SearchCriteria{}, fiber.NewError(fiber.StatusNotFound, "Movie is not in the current recommendations")
	}
	criteria, _ := session.Criteria()
	return session, movie, criteria, nil
}

// historyTitles reads every title the session has decided on. A failed read is
// logged and treated as empty; session-local exclusions still apply.
func (s *recommendationService) historyTitles(ctx context.Context, uow unitofwork.UnitOfWork, sessionId string) []string {
	titles, err := uow.HistoryRepository().DecidedTitles(ctx, sessionId)
	if err != nil {
		s.logger.Error("RecommendationService", "Failed to load history", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil
	}
	return titles
}

func (s *recommendationService) queueEnrichment(ctx context.Context, sessionId string, results []*entity.Movie) {
	var ids []uuid.UUID
	for _, m := range results {
		if !m.HasPoster() {
			ids = append(ids, m.Id)
		}
	}
	if len(ids) == 0 || s.publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.EnrichmentJobMessage{SessionId: sessionId, MovieIds: ids, QueuedAt: s.opts.Now()})
	if err != nil {
		s.logger.Error("RecommendationService", "Failed to encode enrichment job", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), payload); err != nil {
		s.logger.Warn("RecommendationService", "Failed to queue poster enrichment", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}
