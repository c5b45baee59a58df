package bootstrap

import (
	"healthlink-be/internal/config"
	"healthlink-be/internal/controller"
	"healthlink-be/internal/pkg/logger"
	"healthlink-be/internal/repository/unitofwork"
	"healthlink-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProfileController     controller.IProfileController
	AppointmentController controller.IAppointmentController
	ChatController        controller.IChatController
	HealthController      controller.IHealthController
	SettingController     controller.ISettingController
	IntegrationController controller.IIntegrationController

	// Background services (run by main.go)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	return NewContainerWithFactory(unitofwork.NewRepositoryFactory(db), cfg)
}

// NewContainerWithFactory wires the full dependency graph on any repository
// factory; tests pass the in-memory one.
func NewContainerWithFactory(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.ChatEventsTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ChatEventsTopic, sysLogger)

	profileService := service.NewProfileService(uowFactory)
	appointmentService := service.NewAppointmentService(uowFactory)
	conversationService := service.NewConversationService(uowFactory, publisherService)
	healthService := service.NewHealthRecordService(uowFactory)
	settingService := service.NewSystemSettingService(uowFactory)
	integrationService := service.NewIntegrationService(uowFactory, publisherService)

	return &Container{
		ProfileController:     controller.NewProfileController(profileService),
		AppointmentController: controller.NewAppointmentController(appointmentService),
		ChatController:        controller.NewChatController(conversationService),
		HealthController:      controller.NewHealthController(healthService),
		SettingController:     controller.NewSettingController(settingService),
		IntegrationController: controller.NewIntegrationController(integrationService),
		ConsumerService:       consumerService,
		Logger:                sysLogger,
	}
}
