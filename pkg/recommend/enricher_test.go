package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmovie-be/pkg/inference"
)

func TestEnrich_SkipsMoviesWithPoster(t *testing.T) {
	m := movie("Paddington 2", "happy", "medium", 104)
	m.PosterUrl = "https://image.tmdb.org/t/p/w500/paddington.jpg"
	repo := newFakeMovieRepo(m)
	svc := respondWith(`{"poster_url":"https://image.tmdb.org/t/p/w500/other.jpg"}`)
	var published []PosterUpdate

	n := NewEnricher(svc, nopLog, nil).Enrich(context.Background(), repo, repo.movies, func(u PosterUpdate) {
		published = append(published, u)
	})

	assert.Zero(t, n)
	assert.Zero(t, svc.callCount())
	assert.Zero(t, repo.updates)
	assert.Empty(t, published)
}

func TestEnrich_UpdatesStoreThenPublishesInOrder(t *testing.T) {
	a := movie("Chef", "happy", "low", 114)
	b := movie("Amélie", "happy", "low", 122)
	repo := newFakeMovieRepo(a, b)
	svc := &fakeInference{handler: func(req inference.Request) (string, error) {
		assert.True(t, req.UseInternetContext)
		slug := "chef"
		if strings.Contains(req.Prompt, "Amélie") {
			slug = "amelie"
		}
		return fmt.Sprintf(`{"poster_url":"https://upload.wikimedia.org/posters/%s.png"}`, slug), nil
	}}
	var published []PosterUpdate

	n := NewEnricher(svc, nopLog, nil).Enrich(context.Background(), repo, repo.movies, func(u PosterUpdate) {
		assert.Equal(t, u.PosterUrl, repo.posters[u.MovieId], "store is updated before publishing")
		published = append(published, u)
	})

	assert.Equal(t, 2, n)
	require.Len(t, published, 2)
	assert.Equal(t, a.Id, published[0].MovieId)
	assert.Equal(t, "https://upload.wikimedia.org/posters/chef.png", published[0].PosterUrl)
	assert.Equal(t, b.Id, published[1].MovieId)
}

func TestEnrich_FailuresAreSkipped(t *testing.T) {
	bad := movie("Untrusted", "sad", "low", 90)
	broken := movie("Broken", "sad", "low", 90)
	good := movie("Good", "sad", "low", 90)
	repo := newFakeMovieRepo(bad, broken, good)
	svc := &fakeInference{handler: func(req inference.Request) (string, error) {
		switch {
		case strings.Contains(req.Prompt, "Untrusted"):
			return `{"poster_url":"https://evil.example.com/poster.jpg"}`, nil
		case strings.Contains(req.Prompt, "Broken"):
			return "", errors.Join(inference.ErrInference, errors.New("timeout"))
		default:
			return `{"poster_url":"https://m.media-amazon.com/images/good.jpg"}`, nil
		}
	}}
	var published []PosterUpdate

	n := NewEnricher(svc, nopLog, nil).Enrich(context.Background(), repo, repo.movies, func(u PosterUpdate) {
		published = append(published, u)
	})

	assert.Equal(t, 1, n)
	assert.Equal(t, 3, svc.callCount(), "each record is tried exactly once")
	require.Len(t, published, 1)
	assert.Equal(t, good.Id, published[0].MovieId)
}

func TestEnrich_StoreFailureDoesNotPublish(t *testing.T) {
	m := movie("Chef", "happy", "low", 114)
	repo := newFakeMovieRepo(m)
	repo.saveErr = errors.New("db down")
	published := 0

	n := NewEnricher(respondWith(`{"poster_url":"https://image.tmdb.org/t/p/chef.jpg"}`), nopLog, nil).
		Enrich(context.Background(), repo, repo.movies, func(PosterUpdate) { published++ })

	assert.Zero(t, n)
	assert.Zero(t, published)
}

func TestValidPosterURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://image.tmdb.org/t/p/w500/abc.jpg", true},
		{"https://upload.wikimedia.org/wikipedia/en/a/ab/Poster.JPEG", true},
		{"http://m.media-amazon.com/images/M/x.webp", true},
		{"https://sub.ia.media-imdb.com/images/x.png", true},
		{"https://image.tmdb.org/t/p/w500/abc.gif", false},
		{"https://image.tmdb.org/t/p/w500/abc", false},
		{"https://image.tmdb.org.evil.com/abc.jpg", false},
		{"https://eviltmdb.org/abc.jpg", false},
		{"ftp://image.tmdb.org/abc.jpg", false},
		{"javascript:alert(1)//.jpg", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPosterURL(tt.url, DefaultPosterHosts), tt.url)
	}
}
