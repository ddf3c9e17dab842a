package implementation

import (
	"context"
	"errors"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/mapper"
	"moodmovie-be/internal/model"
	"moodmovie-be/internal/repository/contract"
	"moodmovie-be/internal/repository/scope"
	"moodmovie-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const movieBatchSize = 100

type MovieRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieMapper
}

func NewMovieRepository(db *gorm.DB) contract.MovieRepository {
	return &MovieRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *entity.Movie) error {
	if movie.Id == uuid.Nil {
		movie.Id = uuid.New()
	}
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieRepositoryImpl) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	for _, mv := range movies {
		if mv.Id == uuid.Nil {
			mv.Id = uuid.New()
		}
	}
	models := r.mapper.ToModels(movies)
	return r.db.WithContext(ctx).CreateInBatches(models, movieBatchSize).Error
}

func (r *MovieRepositoryImpl) UpdatePoster(ctx context.Context, id uuid.UUID, posterUrl string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("id = ?", id).
		Update("poster_url", posterUrl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MovieRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	var m model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MovieRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	var models []*model.Movie
	query := r.db.WithContext(ctx)
	if !hasOrdering(specs) {
		query = query.Scopes(scope.CatalogOrder)
	}
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MovieRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Movie{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func hasOrdering(specs []specification.Specification) bool {
	for _, s := range specs {
		if _, ok := s.(specification.OrderBy); ok {
			return true
		}
	}
	return false
}
