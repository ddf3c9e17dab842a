package constant

const (
	MoodAnalysisPrompt = `
Analyze this mood description and extract the most likely structured criteria for a movie recommendation.
User says: "%s"

Map to these exact values:
- mood: %s
- energy: %s
- time_minutes: approximate minutes available, only if the user mentions it
- nuance: a short phrase for anything the enums cannot express, only if present

Be smart. "I want to laugh" = happy or silly. "Long day" = tired or cozy. "Adrenaline" = intense with high energy.
Never answer with a mood outside the list.
`

	CatalogExpansionPrompt = `
You are a film curator filling gaps in a recommendation catalog.

Target mood: %s
Target energy: %s
Available time: about %d minutes
%s
Suggest exactly 5 real movies that fit the target.

Rules:
1. Every title must be new. Do NOT suggest any title from the forbidden list below (case does not matter).
2. Spread the picks across at least 3 different release decades.
3. Vary the genres even within the target mood.
4. Exactly one pick is a wildcard: a movie whose mood or energy may differ from the target but is still a plausible choice for this viewer. Set "is_wildcard" to true for it and false for the others.
5. primary_mood must be one of: %s
6. energy_level must be one of: %s
7. Use real runtimes, directors and main cast.

Forbidden titles:
%s
`

	PosterLookupPrompt = `
Find a valid, high-quality movie poster URL for the movie: "%s" (%d).
The URL must be a direct link to an image file (.jpg, .jpeg, .png or .webp) hosted on one of: %s.
Return an empty string if no such image is known.
`
)
