package service

import (
	"context"
	"os"
	"strings"

	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/pkg/events"
	pktNats "moodmovie-be/pkg/nats"
)

// EventSubscriber is satisfied by the NATS subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

// HistorySyncService applies history events recorded on other instances to the
// sessions this instance holds, so a decided title is excluded everywhere.
type HistorySyncService struct {
	subscriber EventSubscriber
	sessions   *memory.SessionRepository
	logger     logger.ILogger
}

func NewHistorySyncService(subscriber EventSubscriber, sessions *memory.SessionRepository, log logger.ILogger) *HistorySyncService {
	return &HistorySyncService{subscriber: subscriber, sessions: sessions, logger: log}
}

func (s *HistorySyncService) Start(ctx context.Context) error {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "local"
	}
	durable := "history-sync-" + strings.NewReplacer(".", "-", "*", "-", ">", "-", " ", "-").Replace(host)
	return s.subscriber.Subscribe(ctx, "events."+events.HistoryPrefix+">", durable, s.Handle)
}

func (s *HistorySyncService) Handle(_ context.Context, event events.Event) error {
	if !events.IsHistory(event.EventType()) {
		return nil
	}
	payload := event.Payload()
	sessionId, _ := payload["session_id"].(string)
	title, _ := payload["movie_title"].(string)
	if sessionId == "" || title == "" {
		s.logger.Warn("HistorySyncService", "Dropping history event without session or title", map[string]interface{}{
			"type": event.EventType(),
		})
		return nil
	}

	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil
	}
	session.Exclude(title)
	s.logger.Debug("HistorySyncService", "Exclusion synced", map[string]interface{}{
		"session_id": sessionId,
		"action":     payload["action"],
	})
	return nil
}
