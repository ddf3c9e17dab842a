// Package recommend holds the recommendation resolution pipeline: criteria
// resolution, catalog matching, catalog expansion, poster enrichment, history
// recording and the search rate limiter.
package recommend

import "strings"

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodAnxious   Mood = "anxious"
	MoodRomantic  Mood = "romantic"
	MoodTired     Mood = "tired"
	MoodMotivated Mood = "motivated"
	MoodBored     Mood = "bored"
	MoodCozy      Mood = "cozy"
	MoodIntense   Mood = "intense"
	MoodThrilling Mood = "thrilling"
	MoodSilly     Mood = "silly"
)

// Moods is the closed mood domain, in picker order.
var Moods = []Mood{
	MoodHappy, MoodSad, MoodAnxious, MoodRomantic, MoodTired, MoodMotivated,
	MoodBored, MoodCozy, MoodIntense, MoodThrilling, MoodSilly,
}

type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

var Energies = []Energy{EnergyLow, EnergyMedium, EnergyHigh}

// DefaultMinutes is used for both an absent time preference and a movie without a
// known duration.
const DefaultMinutes = 90

func ParseMood(s string) (Mood, bool) {
	v := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Moods {
		if m == v {
			return m, true
		}
	}
	return "", false
}

func ParseEnergy(s string) (Energy, bool) {
	v := Energy(strings.ToLower(strings.TrimSpace(s)))
	for _, e := range Energies {
		if e == v {
			return e, true
		}
	}
	return "", false
}

func MoodStrings() []string {
	out := make([]string, len(Moods))
	for i, m := range Moods {
		out[i] = string(m)
	}
	return out
}

func EnergyStrings() []string {
	out := make([]string, len(Energies))
	for i, e := range Energies {
		out[i] = string(e)
	}
	return out
}

// SearchCriteria is the resolved form of user input. Mood and Energy are always
// set; a nil TimeMinutes or empty Nuance means "no preference".
type SearchCriteria struct {
	Mood        Mood   `json:"mood"`
	Energy      Energy `json:"energy"`
	TimeMinutes *int   `json:"time_minutes,omitempty"`
	Nuance      string `json:"nuance,omitempty"`
}

// TargetMinutes is the duration the matcher ranks against.
func (c SearchCriteria) TargetMinutes() int {
	if c.TimeMinutes == nil || *c.TimeMinutes <= 0 {
		return DefaultMinutes
	}
	return *c.TimeMinutes
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ExclusionSet is a case-insensitive set of movie titles.
type ExclusionSet map[string]struct{}

func NewExclusionSet(titles ...string) ExclusionSet {
	s := make(ExclusionSet, len(titles))
	for _, t := range titles {
		s.Add(t)
	}
	return s
}

func (s ExclusionSet) Add(title string) {
	if key := normalizeTitle(title); key != "" {
		s[key] = struct{}{}
	}
}

func (s ExclusionSet) Has(title string) bool {
	if s == nil {
		return false
	}
	_, ok := s[normalizeTitle(title)]
	return ok
}

// Union returns a new set holding both s and other.
func (s ExclusionSet) Union(other ExclusionSet) ExclusionSet {
	out := make(ExclusionSet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}
