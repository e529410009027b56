package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/controller"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/internal/service"
	"diet-coach-be/pkg/calendar"
	"diet-coach-be/pkg/entitlement"
	"diet-coach-be/pkg/events"
	"diet-coach-be/pkg/llm/openai"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ProfileController    controller.IProfileController
	LogController        controller.ILogController
	ChatController       controller.IChatController
	ActivityController   controller.IActivityController
	PaymentController    controller.IPaymentController
	GoogleAuthController controller.IGoogleAuthController
	CommunityController  controller.ICommunityController

	// Background services, run from main
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	codec, err := crypto.NewFieldCodec(cfg.Security.EncryptionKey, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize field codec: %v", err)
	}

	// Event bus
	bus := events.NewBus()

	// Entitlement gate
	gate := entitlement.NewGate(service.NewGateStore(uowFactory))

	// AI provider
	aiProvider := openai.NewProvider(cfg.Ai.OpenAIKey, cfg.Ai.ChatModel, cfg.Ai.VisionModel)

	// Services
	publisherService := service.NewPublisherService(bus, sysLogger)
	consumerService := service.NewConsumerService(bus, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory)
	profileService := service.NewProfileService(uowFactory)
	logService := service.NewLogService(uowFactory, codec, publisherService)
	chatService := service.NewChatService(uowFactory, gate, aiProvider, codec, sysLogger)
	visionService := service.NewVisionService(gate, aiProvider, sysLogger)
	googleAuthService := service.NewGoogleAuthService(uowFactory, codec, cfg.Google)
	activityService := service.NewActivityService(uowFactory, gate, googleAuthService, calendar.NewClient(), codec, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, cfg.Midtrans, sysLogger)
	communityService := service.NewCommunityService(uowFactory)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		ProfileController:    controller.NewProfileController(profileService),
		LogController:        controller.NewLogController(logService),
		ChatController:       controller.NewChatController(chatService, visionService),
		ActivityController:   controller.NewActivityController(activityService),
		PaymentController:    controller.NewPaymentController(paymentService),
		GoogleAuthController: controller.NewGoogleAuthController(googleAuthService, cfg.App.FrontendURL),
		CommunityController:  controller.NewCommunityController(communityService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
