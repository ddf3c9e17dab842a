package contract

import (
	"context"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	CreateBatch(ctx context.Context, movies []*entity.Movie) error
	UpdatePoster(ctx context.Context, id uuid.UUID, posterUrl string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error)
	// FindAll returns movies in catalog (insertion) order unless an OrderBy spec is given.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
