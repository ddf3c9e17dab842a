package service

import (
	"context"
	"encoding/json"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/internal/repository/specification"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/recommend"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const PosterUpdateMessageType = "poster_update"

// SessionNotifier pushes a typed message to the clients of one session.
type SessionNotifier interface {
	SendToSession(ctx context.Context, sessionID, msgType string, data interface{}) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService runs poster enrichment jobs one at a time, off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	enricher   *recommend.Enricher
	notifier   SessionNotifier
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	enricher *recommend.Enricher,
	notifier SessionNotifier,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		sessions:   sessions,
		enricher:   enricher,
		notifier:   notifier,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: enrichment is at most once per record per cycle.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var job dto.EnrichmentJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.logger.Error("ConsumerService", "Invalid enrichment job", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(job.MovieIds) == 0 {
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	movies, err := uow.MovieRepository().FindAll(ctx, specification.ByIDs{IDs: job.MovieIds})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load movies for enrichment", map[string]interface{}{
			"session_id": job.SessionId,
			"error":      err.Error(),
		})
		return
	}

	enriched := cs.enricher.Enrich(ctx, uow.MovieRepository(), movies, func(update recommend.PosterUpdate) {
		cs.deliver(ctx, job.SessionId, update)
	})

	cs.logger.Info("ConsumerService", "Poster enrichment finished", map[string]interface{}{
		"session_id": job.SessionId,
		"requested":  len(job.MovieIds),
		"enriched":   enriched,
	})
}

// deliver merges the update into the session if the movie is still displayed and
// pushes it to the session's clients. Stray updates are dropped.
func (cs *consumerService) deliver(ctx context.Context, sessionId string, update recommend.PosterUpdate) {
	session, ok := cs.sessions.Get(sessionId)
	if !ok || !session.ApplyPoster(update) {
		return
	}
	if cs.notifier == nil {
		return
	}
	err := cs.notifier.SendToSession(ctx, sessionId, PosterUpdateMessageType, dto.PosterUpdateMessage{
		MovieId:   update.MovieId,
		PosterUrl: update.PosterUrl,
	})
	if err != nil {
		cs.logger.Warn("ConsumerService", "Failed to push poster update", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}
