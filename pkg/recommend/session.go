package recommend

import (
	"sync"
	"time"

	"moodmovie-be/internal/entity"

	"github.com/google/uuid"
)

// Session is the state of one search-to-decision cycle. The request goroutine and
// the enrichment consumer both touch it, so every accessor takes the lock.
type Session struct {
	ID string

	mu         sync.Mutex
	decided    ExclusionSet
	lastSearch time.Time
	criteria   *SearchCriteria
	results    []*entity.Movie
}

func NewSession(id string) *Session {
	return &Session{ID: id, decided: NewExclusionSet()}
}

// AllowSearch applies the rate limiter to this session's last search timestamp.
func (s *Session) AllowSearch(now time.Time, cooldown time.Duration) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CheckAndRecord(&s.lastSearch, now, cooldown)
}

// Exclude marks a title as decided for the rest of the session.
func (s *Session) Exclude(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decided.Add(title)
}

// ResetExclusions forgets every decision made in this session.
func (s *Session) ResetExclusions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decided = NewExclusionSet()
}

// Exclusions rebuilds the exclusion set from the stored history titles plus
// everything decided in this session, including decisions whose write failed.
func (s *Session) Exclusions(historyTitles []string) ExclusionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewExclusionSet(historyTitles...).Union(s.decided)
}

func (s *Session) SetResults(criteria SearchCriteria, results []*entity.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := criteria
	s.criteria = &c
	s.results = cloneMovies(results)
}

// Results returns a copy of the current result list.
func (s *Session) Results() []*entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMovies(s.results)
}

func (s *Session) Criteria() (SearchCriteria, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.criteria == nil {
		return SearchCriteria{}, false
	}
	return *s.criteria, true
}

// FindResult looks a movie up in the current result list.
func (s *Session) FindResult(id uuid.UUID) (*entity.Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.results {
		if m.Id == id {
			return m.Clone(), true
		}
	}
	return nil, false
}

// RemoveResult drops a movie from the current list and returns how many remain.
func (s *Session) RemoveResult(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.results[:0]
	for _, m := range s.results {
		if m.Id != id {
			kept = append(kept, m)
		}
	}
	s.results = kept
	return len(s.results)
}

// ApplyPoster merges an enrichment update by id. It reports false when the movie
// is no longer displayed, in which case the update is dropped.
func (s *Session) ApplyPoster(update PosterUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.results {
		if m.Id == update.MovieId {
			m.PosterUrl = update.PosterUrl
			return true
		}
	}
	return false
}

func cloneMovies(in []*entity.Movie) []*entity.Movie {
	out := make([]*entity.Movie, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
