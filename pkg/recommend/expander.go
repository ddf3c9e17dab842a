package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"moodmovie-be/internal/constant"
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/contract"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/pkg/inference"
)

const (
	// ExpansionSize is how many movies one expansion asks for.
	ExpansionSize = 5

	PlaceholderPlatform = "Unknown"
	PlaceholderProvider = "Check local listings"

	DefaultCatalogFetchLimit = 500
)

type generatedMovie struct {
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	PrimaryMood     string   `json:"primary_mood"`
	EnergyLevel     string   `json:"energy_level"`
	Genres          []string `json:"genres"`
	Tags            []string `json:"tags"`
	Director        string   `json:"director"`
	Cast            []string `json:"cast"`
	ImdbRating      *float64 `json:"imdb_rating,omitempty"`
	IsWildcard      bool     `json:"is_wildcard"`
}

type expansionResponse struct {
	Movies []generatedMovie `json:"movies"`
}

// Expander synthesizes catalog entries when matching comes up short.
type Expander struct {
	inference  inference.Service
	log        logger.ILogger
	fetchLimit int
}

func NewExpander(svc inference.Service, log logger.ILogger, fetchLimit int) *Expander {
	if fetchLimit <= 0 {
		fetchLimit = DefaultCatalogFetchLimit
	}
	return &Expander{inference: svc, log: log, fetchLimit: fetchLimit}
}

// Expand generates new movies for the criteria, persists them and returns the
// re-matched final list read back from the store. Generated titles colliding with
// the catalog, the exclusion set or each other are dropped before persistence.
func (e *Expander) Expand(ctx context.Context, movies contract.MovieRepository, criteria SearchCriteria, excluded ExclusionSet) ([]*entity.Movie, error) {
	catalog, err := movies.FindAll(ctx, specification.Pagination{Limit: e.fetchLimit})
	if err != nil {
		return nil, fmt.Errorf("%w: list catalog: %v", ErrPersistence, err)
	}

	known := excluded.Union(nil)
	for _, m := range catalog {
		known.Add(m.Title)
	}

	var resp expansionResponse
	err = e.inference.Invoke(ctx, inference.Request{
		Prompt: e.buildPrompt(criteria, known),
		Schema: expansionSchema(),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("expand catalog: %w", err)
	}

	accepted, wildcard := e.accept(resp.Movies, known)
	accepted, wildcard, err = e.dropStored(ctx, movies, accepted, wildcard)
	if err != nil {
		return nil, err
	}
	if len(accepted) == 0 {
		return nil, fmt.Errorf("%w: expansion produced no new titles", ErrInference)
	}

	if err := movies.CreateBatch(ctx, accepted); err != nil {
		return nil, fmt.Errorf("%w: save generated movies: %v", ErrPersistence, err)
	}

	generated := make([]string, len(accepted))
	generatedSet := NewExclusionSet()
	for i, m := range accepted {
		generated[i] = m.Title
		generatedSet.Add(m.Title)
	}

	refetched, err := movies.FindAll(ctx, specification.MoodOrTitles{Mood: string(criteria.Mood), Titles: generated})
	if err != nil {
		return nil, fmt.Errorf("%w: reload catalog: %v", ErrPersistence, err)
	}

	var candidates []*entity.Movie
	for _, m := range refetched {
		if excluded.Has(m.Title) {
			continue
		}
		if strings.EqualFold(m.PrimaryMood, string(criteria.Mood)) || generatedSet.Has(m.Title) {
			candidates = append(candidates, m)
		}
	}

	final := keepWildcard(rank(candidates, criteria.TargetMinutes()), candidates, wildcard, criteria.TargetMinutes())

	e.log.Info("Expander", "Catalog expanded", map[string]interface{}{
		"mood":      criteria.Mood,
		"generated": len(resp.Movies),
		"accepted":  len(accepted),
		"results":   len(final),
	})
	return final, nil
}

// accept converts generated movies into catalog records, dropping known titles,
// in-batch duplicates and out-of-domain moods. It returns the wildcard title, if
// one survived.
func (e *Expander) accept(generated []generatedMovie, known ExclusionSet) ([]*entity.Movie, string) {
	seen := known.Union(nil)
	var out []*entity.Movie
	wildcard := ""
	for _, g := range generated {
		title := strings.TrimSpace(g.Title)
		if title == "" || seen.Has(title) {
			e.log.Debug("Expander", "Dropping duplicate generated title", map[string]interface{}{"title": g.Title})
			continue
		}
		mood, okMood := ParseMood(g.PrimaryMood)
		energy, okEnergy := ParseEnergy(g.EnergyLevel)
		if !okMood || !okEnergy {
			e.log.Debug("Expander", "Dropping generated movie outside mood domain", map[string]interface{}{"title": g.Title})
			continue
		}
		seen.Add(title)
		if g.IsWildcard && wildcard == "" {
			wildcard = title
		}
		out = append(out, &entity.Movie{
			Title:              title,
			Year:               g.Year,
			Description:        g.Description,
			DurationMinutes:    g.DurationMinutes,
			PrimaryMood:        string(mood),
			EnergyLevel:        string(energy),
			Genres:             g.Genres,
			Tags:               g.Tags,
			Director:           g.Director,
			Cast:               g.Cast,
			ImdbRating:         g.ImdbRating,
			Platform:           PlaceholderPlatform,
			StreamingProviders: []string{PlaceholderProvider},
		})
	}
	return out, wildcard
}

// dropStored removes generated movies whose title already exists anywhere in the
// store. The prompt only lists a window of the catalog, so the model can repeat
// older titles.
func (e *Expander) dropStored(ctx context.Context, movies contract.MovieRepository, accepted []*entity.Movie, wildcard string) ([]*entity.Movie, string, error) {
	if len(accepted) == 0 {
		return accepted, wildcard, nil
	}
	candidates := make([]string, len(accepted))
	for i, m := range accepted {
		candidates[i] = m.Title
	}
	existing, err := movies.FindAll(ctx, specification.TitlesIn{Titles: candidates})
	if err != nil {
		return nil, "", fmt.Errorf("%w: check generated titles: %v", ErrPersistence, err)
	}
	stored := NewExclusionSet()
	for _, m := range existing {
		stored.Add(m.Title)
	}

	kept := accepted[:0]
	for _, m := range accepted {
		if stored.Has(m.Title) {
			e.log.Debug("Expander", "Dropping generated title already in catalog", map[string]interface{}{"title": m.Title})
			if strings.EqualFold(m.Title, wildcard) {
				wildcard = ""
			}
			continue
		}
		kept = append(kept, m)
	}
	return kept, wildcard, nil
}

// keepWildcard swaps the wildcard in for the lowest-ranked pick when ranking cut
// it, then restores duration order.
func keepWildcard(ranked, candidates []*entity.Movie, wildcard string, target int) []*entity.Movie {
	if wildcard == "" {
		return ranked
	}
	for _, m := range ranked {
		if strings.EqualFold(m.Title, wildcard) {
			return ranked
		}
	}
	for _, m := range candidates {
		if strings.EqualFold(m.Title, wildcard) {
			if len(ranked) < MaxResults {
				ranked = append(ranked, m)
			} else {
				ranked[len(ranked)-1] = m
			}
			sort.SliceStable(ranked, func(i, j int) bool {
				return durationDistance(ranked[i], target) < durationDistance(ranked[j], target)
			})
			return ranked
		}
	}
	return ranked
}

func (e *Expander) buildPrompt(criteria SearchCriteria, forbidden ExclusionSet) string {
	nuance := ""
	if criteria.Nuance != "" {
		nuance = fmt.Sprintf("Viewer nuance: %s\n", criteria.Nuance)
	}

	titles := make([]string, 0, len(forbidden))
	for t := range forbidden {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	list := "(none)"
	if len(titles) > 0 {
		list = "- " + strings.Join(titles, "\n- ")
	}

	return fmt.Sprintf(constant.CatalogExpansionPrompt,
		criteria.Mood, criteria.Energy, criteria.TargetMinutes(), nuance,
		strings.Join(MoodStrings(), ", "), strings.Join(EnergyStrings(), ", "),
		list)
}

func expansionSchema() *jsonschema.Schema {
	movie := inference.Object(
		[]string{"title", "year", "description", "duration_minutes", "primary_mood", "energy_level", "genres", "is_wildcard"},
		map[string]*jsonschema.Schema{
			"title":            inference.String(),
			"year":             inference.Integer(),
			"description":      inference.String(),
			"duration_minutes": inference.Integer(),
			"primary_mood":     inference.StringEnum(MoodStrings()...),
			"energy_level":     inference.StringEnum(EnergyStrings()...),
			"genres":           inference.ArrayOf(inference.String(), 1, 0),
			"tags":             inference.ArrayOf(inference.String(), 0, 0),
			"director":         inference.String(),
			"cast":             inference.ArrayOf(inference.String(), 0, 0),
			"imdb_rating":      inference.Number(),
			"is_wildcard":      inference.Boolean(),
		},
	)
	return inference.Object([]string{"movies"}, map[string]*jsonschema.Schema{
		"movies": inference.ArrayOf(movie, ExpansionSize, ExpansionSize),
	})
}
