package recommend

import (
	"sort"
	"strings"

	"moodmovie-be/internal/entity"
)

const (
	// MinResults is the primary match count below which relaxation kicks in and,
	// after relaxation, the catalog is expanded.
	MinResults = 5
	// MaxResults caps every result list.
	MaxResults = 5
)

// MatchPrimary returns movies whose primary mood equals the criteria mood and
// whose title is not excluded, in catalog order.
func MatchPrimary(catalog []*entity.Movie, criteria SearchCriteria, excluded ExclusionSet) []*entity.Movie {
	var out []*entity.Movie
	for _, m := range catalog {
		if strings.EqualFold(m.PrimaryMood, string(criteria.Mood)) && !excluded.Has(m.Title) {
			out = append(out, m)
		}
	}
	return out
}

// Match filters, relaxes and ranks the catalog. It is deterministic for identical
// inputs and never returns more than MaxResults movies.
func Match(catalog []*entity.Movie, criteria SearchCriteria, excluded ExclusionSet) []*entity.Movie {
	candidates := MatchPrimary(catalog, criteria, excluded)

	if len(candidates) < MinResults {
		seen := make(map[string]struct{}, len(candidates))
		for _, m := range candidates {
			seen[m.Id.String()] = struct{}{}
		}
		for _, m := range catalog {
			if _, dup := seen[m.Id.String()]; dup {
				continue
			}
			if strings.EqualFold(m.PrimaryMood, string(criteria.Mood)) || excluded.Has(m.Title) {
				continue
			}
			if strings.EqualFold(m.EnergyLevel, string(criteria.Energy)) {
				seen[m.Id.String()] = struct{}{}
				candidates = append(candidates, m)
			}
		}
	}

	return rank(candidates, criteria.TargetMinutes())
}

// rank sorts by distance to target minutes, keeping catalog order on ties, and
// truncates to MaxResults. The input slice is not modified.
func rank(movies []*entity.Movie, target int) []*entity.Movie {
	ranked := make([]*entity.Movie, len(movies))
	copy(ranked, movies)
	sort.SliceStable(ranked, func(i, j int) bool {
		return durationDistance(ranked[i], target) < durationDistance(ranked[j], target)
	})
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}

func durationDistance(m *entity.Movie, target int) int {
	d := m.DurationMinutes
	if d <= 0 {
		d = DefaultMinutes
	}
	if d > target {
		return d - target
	}
	return target - d
}
