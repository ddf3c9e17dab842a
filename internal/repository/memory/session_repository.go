package memory

import (
	"time"

	"moodmovie-be/pkg/recommend"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps recommendation sessions in process memory. Every read
// refreshes the expiry so an active session never ages out mid-decision.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (r *SessionRepository) Save(session *recommend.Session) {
	r.cache.Set(session.ID, session, r.ttl)
}

func (r *SessionRepository) Get(sessionID string) (*recommend.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		session := x.(*recommend.Session)
		r.cache.Set(sessionID, session, r.ttl)
		return session, true
	}
	return nil, false
}

// GetOrCreate returns the stored session or registers a new empty one.
func (r *SessionRepository) GetOrCreate(sessionID string) *recommend.Session {
	if session, ok := r.Get(sessionID); ok {
		return session
	}
	session := recommend.NewSession(sessionID)
	if err := r.cache.Add(sessionID, session, r.ttl); err != nil {
		// Lost a race with another request for the same id.
		if existing, ok := r.Get(sessionID); ok {
			return existing
		}
		r.Save(session)
	}
	return session
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
