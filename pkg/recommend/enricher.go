package recommend

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"

	"moodmovie-be/internal/constant"
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/contract"
	"moodmovie-be/pkg/inference"
)

var (
	DefaultPosterHosts      = []string{"image.tmdb.org", "upload.wikimedia.org", "m.media-amazon.com", "ia.media-imdb.com"}
	DefaultPosterExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
)

// PosterUpdate is published once per successfully enriched movie.
type PosterUpdate struct {
	MovieId   uuid.UUID `json:"movie_id"`
	PosterUrl string    `json:"poster_url"`
}

type posterLookup struct {
	PosterUrl string `json:"poster_url"`
}

// Enricher fills missing posters one movie at a time.
type Enricher struct {
	inference inference.Service
	log       logger.ILogger
	hosts     []string
}

func NewEnricher(svc inference.Service, log logger.ILogger, hosts []string) *Enricher {
	if len(hosts) == 0 {
		hosts = DefaultPosterHosts
	}
	return &Enricher{inference: svc, log: log, hosts: hosts}
}

// Enrich looks up posters for records that lack one, persists each found URL and
// then publishes it. Failures are logged per record and never retried here. It
// returns the number of records enriched.
func (e *Enricher) Enrich(ctx context.Context, movies contract.MovieRepository, records []*entity.Movie, publish func(PosterUpdate)) int {
	enriched := 0
	for _, m := range records {
		if m == nil || m.HasPoster() {
			continue
		}
		posterUrl, err := e.lookup(ctx, m)
		if err != nil {
			e.log.Warn("Enricher", "Poster lookup failed", map[string]interface{}{
				"movie_id": m.Id.String(),
				"title":    m.Title,
				"error":    err.Error(),
			})
			continue
		}
		if err := movies.UpdatePoster(ctx, m.Id, posterUrl); err != nil {
			e.log.Error("Enricher", "Failed to save poster", map[string]interface{}{
				"movie_id": m.Id.String(),
				"error":    err.Error(),
			})
			continue
		}
		enriched++
		if publish != nil {
			publish(PosterUpdate{MovieId: m.Id, PosterUrl: posterUrl})
		}
	}
	return enriched
}

func (e *Enricher) lookup(ctx context.Context, m *entity.Movie) (string, error) {
	var out posterLookup
	err := e.inference.Invoke(ctx, inference.Request{
		Prompt:             fmt.Sprintf(constant.PosterLookupPrompt, m.Title, m.Year, strings.Join(e.hosts, ", ")),
		Schema:             posterSchema(),
		UseInternetContext: true,
	}, &out)
	if err != nil {
		return "", err
	}
	candidate := strings.TrimSpace(out.PosterUrl)
	if candidate == "" {
		return "", fmt.Errorf("%w: no poster found", ErrInference)
	}
	if !ValidPosterURL(candidate, e.hosts) {
		return "", fmt.Errorf("%w: poster url %q not allowed", ErrInference, candidate)
	}
	return candidate, nil
}

// ValidPosterURL accepts http(s) image URLs whose host is, or is a subdomain of,
// an allowed host.
func ValidPosterURL(raw string, hosts []string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	hostOK := false
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			hostOK = true
			break
		}
	}
	if !hostOK {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	for _, allowed := range DefaultPosterExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func posterSchema() *jsonschema.Schema {
	return inference.Object([]string{"poster_url"}, map[string]*jsonschema.Schema{
		"poster_url": inference.String(),
	})
}
