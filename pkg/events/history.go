package events

import (
	"strings"
	"time"
)

const HistoryPrefix = "history."

// HistoryRecorded announces a watch or skip decision so other instances can
// update the session's exclusion set.
func HistoryRecorded(sessionId, movieId, title, action string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: HistoryPrefix + action,
		Data: map[string]interface{}{
			"session_id":  sessionId,
			"movie_id":    movieId,
			"movie_title": title,
			"action":      action,
			"recorded_at": at.UTC().Format(time.RFC3339Nano),
		},
		OccurredAt: at,
	}
}

// IsHistory reports whether an event type (or a full "events.history.*" subject)
// is a history event.
func IsHistory(eventType string) bool {
	return strings.HasPrefix(strings.TrimPrefix(eventType, "events."), HistoryPrefix)
}
