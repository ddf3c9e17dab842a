package bootstrap

import (
	"context"

	"moodmovie-be/internal/config"
	"moodmovie-be/internal/controller"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/repository/memory"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/internal/service"
	"moodmovie-be/internal/websocket"
	"moodmovie-be/pkg/inference"
	"moodmovie-be/pkg/llm/factory"
	"moodmovie-be/pkg/recommend"

	pktNats "moodmovie-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EnrichmentTopic is the in-process queue for poster enrichment jobs.
const EnrichmentTopic = "poster_enrichment"

type Container struct {
	// Controllers
	RecommendationController controller.IRecommendationController
	HistoryController        controller.IHistoryController
	MovieController          controller.IMovieController
	LogController            controller.ILogController

	// Background services, started by main
	ConsumerService    service.IConsumerService
	HistorySyncService *service.HistorySyncService
	WebSocketHub       *websocket.Hub

	Logger   logger.ILogger
	Sessions *memory.SessionRepository

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	sessions := memory.NewSessionRepository(cfg.Recommendation.SessionTTL)
	c := &Container{Logger: sysLogger, Sessions: sessions}

	// 2. Job queue
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Inference
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.LLMBaseURL,
		APIKey:   apiKeyFor(cfg.Ai),
	})
	if err != nil {
		return nil, err
	}
	sysLogger.Info("Bootstrap", "LLM provider configured", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	var inferenceService inference.Service = inference.NewService(llmProvider, cfg.Ai.Temperature)
	if !cfg.Ai.BreakerDisabled {
		inferenceService = inference.NewBreakerService(inferenceService, sysLogger)
	}

	// 4. Infrastructure, all optional
	recorderOpts := []recommend.RecorderOption{}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS publisher unavailable, history events disabled", map[string]interface{}{"error": err.Error()})
		} else {
			recorderOpts = append(recorderOpts, recommend.WithPublisher(natsPub))
			c.closers = append(c.closers, natsPub.Close)
		}

		natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS subscriber unavailable, history sync disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.HistorySyncService = service.NewHistorySyncService(natsSub, sessions, sysLogger)
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Redis URL not parseable, using it as an address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			sysLogger.Warn("Bootstrap", "Redis unavailable, websocket fan-out stays local", map[string]interface{}{"error": err.Error()})
			_ = rdb.Close()
			rdb = nil
		} else {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)

	// 5. Pipeline
	resolver := recommend.NewResolver(inferenceService, sysLogger)
	expander := recommend.NewExpander(inferenceService, sysLogger, cfg.Recommendation.CatalogFetchLimit)
	enricher := recommend.NewEnricher(inferenceService, sysLogger, cfg.Recommendation.PosterHosts)
	recorder := recommend.NewRecorder(sysLogger, recorderOpts...)

	// 6. Services
	publisherService := service.NewPublisherService(EnrichmentTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		EnrichmentTopic,
		uowFactory,
		sessions,
		enricher,
		c.WebSocketHub,
		sysLogger,
	)

	recommendationService := service.NewRecommendationService(
		uowFactory,
		sessions,
		resolver,
		expander,
		recorder,
		publisherService,
		sysLogger,
		service.RecommendationOptions{Cooldown: cfg.Recommendation.SearchCooldown},
	)
	historyService := service.NewHistoryService(uowFactory, sessions, sysLogger)
	movieService := service.NewMovieService(uowFactory)

	// 7. Controllers
	c.RecommendationController = controller.NewRecommendationController(recommendationService, c.WebSocketHub, wsLogger)
	c.HistoryController = controller.NewHistoryController(historyService)
	c.MovieController = controller.NewMovieController(movieService)
	c.LogController = controller.NewLogController(sysLogger)

	return c, nil
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func apiKeyFor(cfg config.AIConfig) string {
	switch cfg.LLMProvider {
	case "openai":
		return cfg.OpenAIAPIKey
	case "huggingface":
		return cfg.HuggingFaceKey
	default:
		return ""
	}
}
