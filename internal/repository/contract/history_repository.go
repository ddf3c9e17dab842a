package contract

import (
	"context"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HistoryRepository interface {
	Create(ctx context.Context, event *entity.HistoryEvent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoryEvent, error)
	// FindAll returns events newest first unless an OrderBy spec is given.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEvent, error)
	// DecidedTitles returns every distinct title the session watched or skipped.
	DecidedTitles(ctx context.Context, sessionId string) ([]string, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	DeleteBySession(ctx context.Context, sessionId string) error
}
