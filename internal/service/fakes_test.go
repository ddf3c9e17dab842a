package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/contract"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/inference"
	"moodmovie-be/pkg/recommend"

	"github.com/google/uuid"
)

var nopLog = logger.NewNopLogger()

type fakeFactory struct {
	movies  *fakeMovieRepo
	history *fakeHistoryRepo
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &fakeUow{f: f}
}

type fakeUow struct{ f *fakeFactory }

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error { return nil }
func (u *fakeUow) Rollback() error { return nil }
func (u *fakeUow) MovieRepository() contract.MovieRepository { return u.f.movies }
func (u *fakeUow) HistoryRepository() contract.HistoryRepository { return u.f.history }

// fakeMovieRepo understands the few specifications the services use for lookups
// and ignores the rest.
type fakeMovieRepo struct {
	mu      sync.Mutex
	movies  []*entity.Movie
	findErr error
}

func (r *fakeMovieRepo) match(m *entity.Movie, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if id == m.Id {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return r.CreateBatch(ctx, []*entity.Movie{movie})
}

func (r *fakeMovieRepo) CreateBatch(_ context.Context, movies []*entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range movies {
		if m.Id == uuid.Nil {
			m.Id = uuid.New()
		}
		r.movies = append(r.movies, m.Clone())
	}
	return nil
}

func (r *fakeMovieRepo) UpdatePoster(_ context.Context, id uuid.UUID, posterUrl string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.Id == id {
			m.PosterUrl = posterUrl
		}
	}
	return nil
}

func (r *fakeMovieRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeMovieRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*entity.Movie
	for _, m := range r.movies {
		if r.match(m, specs) {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeHistoryRepo struct {
	mu          sync.Mutex
	events      []*entity.HistoryEvent
	createErr   error
	favoriteErr error
}

func (r *fakeHistoryRepo) match(e *entity.HistoryEvent, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		case specification.BySession:
			if e.SessionId != s.SessionID {
				return false
			}
		case specification.ByAction:
			if e.Action != s.Action {
				return false
			}
		case specification.FavoritesOnly:
			if !e.IsFavorite {
				return false
			}
		}
	}
	return true
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

func (r *fakeHistoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoryEvent, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeHistoryRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.HistoryEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.HistoryEvent
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.match(r.events[i], specs) {
			c := *r.events[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) DecidedTitles(_ context.Context, sessionId string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.SessionId == sessionId {
			out = append(out, e.MovieTitle)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) SetFavorite(_ context.Context, id uuid.UUID, favorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.favoriteErr != nil {
		return r.favoriteErr
	}
	for _, e := range r.events {
		if e.Id == id {
			e.IsFavorite = favorite
		}
	}
	return nil
}

func (r *fakeHistoryRepo) DeleteBySession(_ context.Context, sessionId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.events[:0]
	for _, e := range r.events {
		if e.SessionId != sessionId {
			kept = append(kept, e)
		}
	}
	r.events = kept
	return nil
}

type fakeInference struct {
	mu      sync.Mutex
	calls   int
	handler func(req inference.Request) (string, error)
}

func (f *fakeInference) Invoke(_ context.Context, req inference.Request, out any) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	body, err := f.handler(req)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(body), out)
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type sentMessage struct {
	sessionID string
	msgType   string
	data      interface{}
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *fakeNotifier) SendToSession(_ context.Context, sessionID, msgType string, data interface{}) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{sessionID, msgType, data})
	return nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type harness struct {
	factory   *fakeFactory
	sessions  *memory.SessionRepository
	llm       *fakeInference
	publisher *fakePublisher
	clock     *fakeClock
	service   IRecommendationService
}

func newHarness(catalog ...*entity.Movie) *harness {
	h := &harness{
		factory:   &fakeFactory{movies: &fakeMovieRepo{movies: catalog}, history: &fakeHistoryRepo{}},
		sessions:  memory.NewSessionRepository(time.Hour),
		llm:       &fakeInference{handler: func(inference.Request) (string, error) { return "", inference.ErrInference }},
		publisher: &fakePublisher{},
		clock:     &fakeClock{now: time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)},
	}
	recorder := recommend.NewRecorder(nopLog,
		recommend.WithClock(h.clock.Now),
		recommend.WithSpawner(func(f func()) { f() }),
	)
	h.service = NewRecommendationService(
		h.factory,
		h.sessions,
		recommend.NewResolver(h.llm, nopLog),
		recommend.NewExpander(h.llm, nopLog, 0),
		recorder,
		h.publisher,
		nopLog,
		RecommendationOptions{Now: h.clock.Now},
	)
	return h
}

func movie(title, mood, energy string, minutes int) *entity.Movie {
	return &entity.Movie{
		Id:              uuid.New(),
		Title:           title,
		Year:            2001,
		PrimaryMood:     mood,
		EnergyLevel:     energy,
		DurationMinutes: minutes,
		Genres:          []string{"Comedy", "Family"},
	}
}

func intPtr(v int) *int { return &v }
