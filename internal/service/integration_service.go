package service

import (
	"context"
	"time"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/entity"
	"healthlink-be/internal/pkg/apperror"
	"healthlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	recentAppointmentsLimit  = 5
	recentHealthRecordsLimit = 10
)

// IIntegrationService backs the two endpoints the automation engine calls:
// the chat webhook writer and the user-context reader.
type IIntegrationService interface {
	ChatWebhook(ctx context.Context, req *dto.ChatWebhookRequest) error
	UserContext(ctx context.Context, userIdParam string) (*dto.UserContextResponse, error)
}

type integrationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewIntegrationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IIntegrationService {
	return &integrationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// ChatWebhook appends the user and bot sides of a chat turn (either may be
// absent) and refreshes the conversation's updated_at. All writes share one
// transaction so a half-written turn is never observable.
func (s *integrationService) ChatWebhook(ctx context.Context, req *dto.ChatWebhookRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindByID(ctx, req.ConversationId)
	if err != nil {
		return err
	}
	if conversation == nil {
		return apperror.NotFound("Conversation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	created := make([]entity.Message, 0, 2)
	if req.UserMessage != nil && *req.UserMessage != "" {
		message := entity.Message{
			Id:             uuid.New(),
			ConversationId: req.ConversationId,
			Content:        *req.UserMessage,
			SenderType:     entity.SenderTypeUser,
		}
		if err := uow.MessageRepository().Create(ctx, &message); err != nil {
			uow.Rollback()
			return err
		}
		created = append(created, message)
	}

	if req.BotResponse != nil && *req.BotResponse != "" {
		message := entity.Message{
			Id:             uuid.New(),
			ConversationId: req.ConversationId,
			Content:        *req.BotResponse,
			SenderType:     entity.SenderTypeBot,
		}
		if err := uow.MessageRepository().Create(ctx, &message); err != nil {
			uow.Rollback()
			return err
		}
		created = append(created, message)
	}

	if err := uow.ConversationRepository().TouchUpdatedAt(ctx, req.ConversationId, time.Now()); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	for _, message := range created {
		s.publisherService.PublishChatMessageCreated(ctx, dto.ChatMessageCreatedEvent{
			MessageId:      message.Id,
			ConversationId: message.ConversationId,
			SenderType:     message.SenderType,
			CreatedAt:      message.CreatedAt,
		})
	}
	return nil
}

// UserContext composes three independent reads into one snapshot. A user
// without a profile row still gets a snapshot; the profile field stays null.
func (s *integrationService) UserContext(ctx context.Context, userIdParam string) (*dto.UserContextResponse, error) {
	if userIdParam == "" {
		return nil, apperror.Validation("user_id parameter is required")
	}
	userId, err := uuid.Parse(userIdParam)
	if err != nil {
		return nil, apperror.Validation("invalid user_id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindFirstByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}

	appointments, err := uow.AppointmentRepository().FindRecentByUserID(ctx, userId, recentAppointmentsLimit)
	if err != nil {
		return nil, err
	}

	healthRecords, err := uow.HealthRecordRepository().FindRecentByUserID(ctx, userId, recentHealthRecordsLimit)
	if err != nil {
		return nil, err
	}

	appointmentResponses := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		appointmentResponses[i] = toAppointmentResponse(a)
	}
	healthResponses := make([]*dto.HealthRecordResponse, len(healthRecords))
	for i, h := range healthRecords {
		healthResponses[i] = toHealthRecordResponse(h)
	}

	return &dto.UserContextResponse{
		Profile:      toProfileResponse(profile),
		Appointments: appointmentResponses,
		HealthData:   healthResponses,
		Timestamp:    time.Now().UTC(),
	}, nil
}
