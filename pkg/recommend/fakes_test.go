package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/pkg/events"
	"moodmovie-be/pkg/inference"
)

var nopLog = logger.NewNopLogger()

// fakeInference answers each call through handler and records the requests.
type fakeInference struct {
	mu      sync.Mutex
	calls   []inference.Request
	handler func(req inference.Request) (string, error)
}

func respondWith(body string) *fakeInference {
	return &fakeInference{handler: func(inference.Request) (string, error) { return body, nil }}
}

func failWith(err error) *fakeInference {
	return &fakeInference{handler: func(inference.Request) (string, error) { return "", err }}
}

func (f *fakeInference) Invoke(_ context.Context, req inference.Request, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	body, err := f.handler(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("%w: %v", inference.ErrInference, err)
	}
	return nil
}

func (f *fakeInference) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeMovieRepo ignores specifications; callers filter locally anyway.
type fakeMovieRepo struct {
	mu       sync.Mutex
	movies   []*entity.Movie
	created  [][]*entity.Movie
	posters  map[uuid.UUID]string
	findErr  error
	saveErr  error
	finds    int
	updates  int
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	return &fakeMovieRepo{movies: movies, posters: map[uuid.UUID]string{}}
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return r.CreateBatch(ctx, []*entity.Movie{movie})
}

func (r *fakeMovieRepo) CreateBatch(_ context.Context, movies []*entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	batch := make([]*entity.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Id == uuid.Nil {
			m.Id = uuid.New()
		}
		r.movies = append(r.movies, m.Clone())
		batch = append(batch, m.Clone())
	}
	r.created = append(r.created, batch)
	return nil
}

func (r *fakeMovieRepo) UpdatePoster(_ context.Context, id uuid.UUID, posterUrl string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.posters[id] = posterUrl
	for _, m := range r.movies {
		if m.Id == id {
			m.PosterUrl = posterUrl
		}
	}
	return nil
}

func (r *fakeMovieRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.movies) == 0 {
		return nil, nil
	}
	return r.movies[0].Clone(), nil
}

func (r *fakeMovieRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return cloneMovies(r.movies), nil
}

func (r *fakeMovieRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.movies)), nil
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	events    []*entity.HistoryEvent
	createErr error
}

func (r *fakeHistoryRepo) Create(_ context.Context, event *entity.HistoryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	c := *event
	r.events = append(r.events, &c)
	return nil
}

func (r *fakeHistoryRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.HistoryEvent, error) {
	return nil, nil
}

func (r *fakeHistoryRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.HistoryEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.HistoryEvent(nil), r.events...), nil
}

func (r *fakeHistoryRepo) DecidedTitles(_ context.Context, _ string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.MovieTitle
	}
	return out, nil
}

func (r *fakeHistoryRepo) SetFavorite(_ context.Context, _ uuid.UUID, _ bool) error { return nil }

func (r *fakeHistoryRepo) DeleteBySession(_ context.Context, _ string) error { return nil }

func (r *fakeHistoryRepo) saved() []*entity.HistoryEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.HistoryEvent(nil), r.events...)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func movie(title, mood, energy string, minutes int) *entity.Movie {
	return &entity.Movie{
		Id:              uuid.New(),
		Title:           title,
		Year:            2000,
		PrimaryMood:     mood,
		EnergyLevel:     energy,
		DurationMinutes: minutes,
	}
}

func intPtr(v int) *int { return &v }

func titles(movies []*entity.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}
