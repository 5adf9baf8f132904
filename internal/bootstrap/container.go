package bootstrap

import (
	"context"
	"log"
	"net/http"
	"time"

	"studytrail-be/internal/config"
	"studytrail-be/internal/controller"
	"studytrail-be/internal/handler"
	"studytrail-be/internal/pkg/logger"
	"studytrail-be/internal/repository/memory"
	"studytrail-be/internal/repository/unitofwork"
	"studytrail-be/internal/service"
	"studytrail-be/internal/websocket"
	"studytrail-be/pkg/connectivity"
	"studytrail-be/pkg/embedding"
	llmOllama "studytrail-be/pkg/llm/ollama"

	pktNats "studytrail-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// TopicReadingProgress is the in-process bus topic progress updates travel on.
const TopicReadingProgress = "READING_PROGRESS"

type Container struct {
	// Controllers
	ReadingController controller.IReadingController
	QuizController    controller.IQuizController
	TutorController   controller.ITutorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WsHandler    *handler.WsHandler
	WebSocketHub *websocket.Hub

	// Connectivity state machine; main.go owns its probe loop lifetime
	Tracker *connectivity.Tracker
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	llmProvider := llmOllama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	log.Printf("[INFO] Using Ollama at %s (llm=%s embeddings=%s)", cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel, cfg.Ai.EmbeddingModel)

	// In-memory snapshot cache
	snapshotCache := memory.NewSnapshotCache()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// Connectivity tracker; offline-mode flips are fanned out to every client
	tracker := connectivity.NewTracker()
	offlineCh, _ := tracker.Subscribe()
	go func() {
		for offline := range offlineCh {
			wsHub.BroadcastConnectivity(offline)
		}
	}()

	// 5. Services
	publisherService := service.NewPublisherService(TopicReadingProgress, pubSub)
	consumerService := service.NewConsumerService(pubSub, TopicReadingProgress, wsHub)

	readingService := service.NewReadingService(uowFactory, snapshotCache, publisherService, natsPub, sysLogger)
	quizService := service.NewQuizService(uowFactory, cfg.Quiz.QuestionCount)
	tutorService := service.NewTutorService(uowFactory, embeddingProvider, llmProvider, tracker)

	wsHandler := handler.NewWsHandler(wsHub, sysLogger)

	return &Container{
		ReadingController: controller.NewReadingController(readingService),
		QuizController:    controller.NewQuizController(quizService),
		TutorController:   controller.NewTutorController(tutorService, tracker),

		ConsumerService: consumerService,

		WsHandler:    wsHandler,
		WebSocketHub: wsHub,
		Tracker:      tracker,
	}
}

// NewOllamaProbe reports whether the local AI stack answers HTTP. The probe
// loop in main.go uses it to drive offline mode.
func NewOllamaProbe(baseURL string) connectivity.Probe {
	client := &http.Client{Timeout: 5 * time.Second}
	return connectivity.ProbeFunc(func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/tags", nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode < http.StatusInternalServerError
	})
}
