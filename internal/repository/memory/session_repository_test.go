package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_GetOrCreate(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	first := repo.GetOrCreate("abc")
	second := repo.GetOrCreate("abc")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, "abc", first.ID)
	assert.Equal(t, 1, repo.Count())
}

func TestSessionRepository_ConcurrentCreateYieldsOneSession(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[interface{}]struct{}{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := repo.GetOrCreate("shared")
			mu.Lock()
			seen[s] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(0)
	repo.GetOrCreate("gone")

	repo.Delete("gone")

	_, ok := repo.Get("gone")
	assert.False(t, ok)
}

func TestSessionRepository_Expiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	repo.GetOrCreate("short")

	time.Sleep(40 * time.Millisecond)

	_, ok := repo.Get("short")
	assert.False(t, ok)
}
