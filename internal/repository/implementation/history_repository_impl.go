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

type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB) contract.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewHistoryMapper(),
	}
}

func (r *HistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, event *entity.HistoryEvent) error {
	if event.Id == uuid.Nil {
		event.Id = uuid.New()
	}
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *HistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoryEvent, error) {
	var m model.HistoryEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEvent, error) {
	var models []*model.HistoryEvent
	query := r.db.WithContext(ctx)
	if !hasOrdering(specs) {
		query = query.Scopes(scope.OrderByTimestampDesc)
	}
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *HistoryRepositoryImpl) DecidedTitles(ctx context.Context, sessionId string) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).
		Model(&model.HistoryEvent{}).
		Where("session_id = ?", sessionId).
		Distinct("movie_title").
		Pluck("movie_title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *HistoryRepositoryImpl) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.HistoryEvent{}).
		Where("id = ?", id).
		Update("is_favorite", favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HistoryRepositoryImpl) DeleteBySession(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.HistoryEvent{}).Error
}
