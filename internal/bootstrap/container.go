package bootstrap

import (
	"context"
	"log"

	"circletel-admin-be/internal/config"
	"circletel-admin-be/internal/controller"
	"circletel-admin-be/internal/handler"
	"circletel-admin-be/internal/pkg/logger"
	"circletel-admin-be/internal/pkg/mailer"
	"circletel-admin-be/internal/repository/unitofwork"
	"circletel-admin-be/internal/service"
	"circletel-admin-be/internal/websocket"

	pktNats "circletel-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	OrderController         controller.IOrderController
	PaymentMethodController controller.IPaymentMethodController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderEmail,
		cfg.SMTP.SenderName,
		cfg.App.PortalURL,
	)

	// 2. Internal Event Bus (email jobs)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Worker.EmailTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Worker.EmailTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory)
	orderService := service.NewOrderService(uowFactory, publisherService, natsPub, sysLogger)
	activationService := service.NewActivationService(uowFactory, publisherService, natsPub, sysLogger)
	paymentMethodService := service.NewPaymentMethodService(uowFactory)

	// 3.5 Notification System
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:          controller.NewAuthController(authService),
		OrderController:         controller.NewOrderController(orderService, activationService, cfg.App.UploadDir),
		PaymentMethodController: controller.NewPaymentMethodController(paymentMethodService),

		ConsumerService: consumerService,
	}
}
