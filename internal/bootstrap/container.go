package bootstrap

import (
	"context"
	"log"
	"time"

	"placid-catalog-be/internal/config"
	"placid-catalog-be/internal/controller"
	"placid-catalog-be/internal/handler"
	"placid-catalog-be/internal/pkg/logger"
	"placid-catalog-be/internal/pkg/mailer"
	"placid-catalog-be/internal/repository/session"
	"placid-catalog-be/internal/repository/unitofwork"
	"placid-catalog-be/internal/service"
	"placid-catalog-be/internal/websocket"
	"placid-catalog-be/pkg/embedding"
	"placid-catalog-be/pkg/llm/factory"

	pktNats "placid-catalog-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CategoryController   controller.ICategoryController
	ProductController    controller.IProductController
	BlogController       controller.IBlogController
	ContactController    controller.IContactController
	NewsletterController controller.INewsletterController
	ChatbotController    controller.IChatbotController
	AuthController       controller.IAuthController

	// Background services (exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Shared
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.OwnerEmail,
		cfg.App.SiteURL,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	default:
		// No provider: chatbot retrieval falls back to keyword search and
		// embed jobs become no-ops.
		log.Printf("[INFO] Embedding provider disabled")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

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

	sessionRepo := session.NewRepository(rdb)
	catalogCache := gocache.New(1*time.Minute, 5*time.Minute)

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		cfg.Keys.MailTopic,
		uowFactory,
		embeddingProvider,
		emailService,
	)

	categoryService := service.NewCategoryService(uowFactory, catalogCache)
	productService := service.NewProductService(uowFactory, publisherService, cfg.Keys.EmbedTopic, catalogCache)
	blogService := service.NewBlogService(uowFactory)
	inquiryService := service.NewInquiryService(uowFactory, publisherService, cfg.Keys.MailTopic, emailService, natsPub, sysLogger)
	newsletterService := service.NewNewsletterService(uowFactory, publisherService, cfg.Keys.MailTopic, sysLogger)
	chatbotService := service.NewChatbotService(uowFactory, embeddingProvider, llmProvider, sessionRepo, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.App.JWTSecret)

	var notificationService *service.NotificationService
	if natsSub != nil {
		notificationService = service.NewNotificationService(natsSub, wsHub, sysLogger)
	}

	return &Container{
		CategoryController:   controller.NewCategoryController(categoryService),
		ProductController:    controller.NewProductController(productService, cfg.App.UploadDir, cfg.App.SiteURL),
		BlogController:       controller.NewBlogController(blogService),
		ContactController:    controller.NewContactController(inquiryService),
		NewsletterController: controller.NewNewsletterController(newsletterService),
		ChatbotController:    controller.NewChatbotController(chatbotService),
		AuthController:       controller.NewAuthController(authService),

		ConsumerService:     consumerService,
		NotificationService: notificationService,

		NotificationHandler: handler.NewNotificationHandler(wsHub, sysLogger),
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
