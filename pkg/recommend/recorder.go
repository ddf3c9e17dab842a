package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/contract"
	"moodmovie-be/pkg/events"
)

// EventPublisher is satisfied by the NATS publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Recorder appends watch and skip decisions to history.
type Recorder struct {
	log       logger.ILogger
	publisher EventPublisher
	now       func() time.Time
	spawn     func(func())
}

type RecorderOption func(*Recorder)

// WithPublisher announces each stored event on the bus.
func WithPublisher(p EventPublisher) RecorderOption {
	return func(r *Recorder) { r.publisher = p }
}

func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithSpawner replaces the goroutine used for skip writes.
func WithSpawner(spawn func(func())) RecorderOption {
	return func(r *Recorder) { r.spawn = spawn }
}

func NewRecorder(log logger.ILogger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		log:   log,
		now:   time.Now,
		spawn: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record excludes the movie from the session and drops it from the current
// results before touching the store. Watched events are persisted synchronously and
// a failure is returned wrapped in ErrPersistence alongside the event. Skipped
// events are persisted in the background.
func (r *Recorder) Record(ctx context.Context, history contract.HistoryRepository, session *Session, movie *entity.Movie, criteria SearchCriteria, action string) (*entity.HistoryEvent, error) {
	if action != entity.HistoryActionWatched && action != entity.HistoryActionSkipped {
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	session.Exclude(movie.Title)
	session.RemoveResult(movie.Id)

	event := &entity.HistoryEvent{
		Id:            uuid.New(),
		SessionId:     session.ID,
		MovieId:       movie.Id,
		MovieTitle:    movie.Title,
		MovieYear:     movie.Year,
		MoodContext:   string(criteria.Mood),
		EnergyContext: string(criteria.Energy),
		Action:        action,
		Timestamp:     r.now().UTC(),
	}

	if action == entity.HistoryActionSkipped {
		pending := *event
		bg := context.WithoutCancel(ctx)
		r.spawn(func() {
			_ = r.persist(bg, history, &pending)
		})
		return event, nil
	}

	if err := r.persist(ctx, history, event); err != nil {
		return event, fmt.Errorf("%w: record watch: %v", ErrPersistence, err)
	}
	return event, nil
}

func (r *Recorder) persist(ctx context.Context, history contract.HistoryRepository, event *entity.HistoryEvent) error {
	if err := history.Create(ctx, event); err != nil {
		r.log.Error("Recorder", "Failed to save history event", map[string]interface{}{
			"session_id": event.SessionId,
			"movie_id":   event.MovieId.String(),
			"action":     event.Action,
			"error":      err.Error(),
		})
		return err
	}

	if r.publisher != nil {
		evt := events.HistoryRecorded(event.SessionId, event.MovieId.String(), event.MovieTitle, event.Action, event.Timestamp)
		if err := r.publisher.Publish(ctx, evt); err != nil {
			r.log.Warn("Recorder", "Failed to publish history event", map[string]interface{}{
				"session_id": event.SessionId,
				"error":      err.Error(),
			})
		}
	}
	return nil
}
