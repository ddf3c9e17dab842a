package service

import (
	"context"
	"fmt"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/recommend"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultMoviePageSize = 20

type IMovieService interface {
	List(ctx context.Context, req *dto.ListMoviesRequest) (*dto.MovieListResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MovieResponse, error)
}

type movieService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMovieService(uowFactory unitofwork.RepositoryFactory) IMovieService {
	return &movieService{uowFactory: uowFactory}
}

func (s *movieService) List(ctx context.Context, req *dto.ListMoviesRequest) (*dto.MovieListResponse, error) {
	var filters []specification.Specification
	if req.Mood != "" {
		filters = append(filters, specification.ByMood{Mood: req.Mood})
	}
	if req.Energy != "" {
		filters = append(filters, specification.ByEnergy{Energy: req.Energy})
	}
	if req.Query != "" {
		filters = append(filters, specification.TitleSearch{Query: req.Query})
	}
	if req.MissingPoster {
		filters = append(filters, specification.MissingPoster{})
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultMoviePageSize
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.MovieRepository().Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("%w: count movies: %v", recommend.ErrPersistence, err)
	}
	page := append(filters, specification.Pagination{Limit: limit, Offset: req.Offset})
	movies, err := uow.MovieRepository().FindAll(ctx, page...)
	if err != nil {
		return nil, fmt.Errorf("%w: list movies: %v", recommend.ErrPersistence, err)
	}

	return &dto.MovieListResponse{Movies: toMovieResponses(movies), Total: total}, nil
}

func (s *movieService) Show(ctx context.Context, id uuid.UUID) (*dto.MovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("%w: find movie: %v", recommend.ErrPersistence, err)
	}
	if movie == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Movie not found")
	}
	return toMovieResponse(movie), nil
}
