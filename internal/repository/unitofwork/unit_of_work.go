package unitofwork

import (
	"context"

	"moodmovie-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MovieRepository() contract.MovieRepository
	HistoryRepository() contract.HistoryRepository
}
