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

type IConversationService interface {
	GetAll(ctx context.Context) ([]*dto.ConversationResponse, error)
	Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConversationRequest) (*dto.ConversationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error)
	CreateMessage(ctx context.Context, conversationId uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type conversationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IConversationService {
	return &conversationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *conversationService) GetAll(ctx context.Context) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		result[i] = toConversationResponse(c)
	}
	return result, nil
}

func (s *conversationService) Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation := entity.Conversation{
		Id:     uuid.New(),
		UserId: req.UserId,
		Title:  req.Title,
	}
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}

	return toConversationResponse(&conversation), nil
}

func (s *conversationService) Show(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.NotFound("Conversation not found")
	}

	return toConversationResponse(conversation), nil
}

func (s *conversationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ConversationRepository()

	conversation, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.NotFound("Conversation not found")
	}

	if req.Title != nil {
		conversation.Title = *req.Title
	}

	if err := repo.Update(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation), nil
}

func (s *conversationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ConversationRepository().Delete(ctx, id)
}

func (s *conversationService) GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAllByConversationID(ctx, conversationId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		result[i] = toMessageResponse(m)
	}
	return result, nil
}

// CreateMessage appends to the conversation addressed by the path. The
// append and the parent updated_at refresh commit together.
func (s *conversationService) CreateMessage(ctx context.Context, conversationId uuid.UUID, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindByID(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperror.NotFound("Conversation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	message := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversationId,
		Content:        req.Content,
		SenderType:     req.SenderType,
	}
	if err := uow.MessageRepository().Create(ctx, &message); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.ConversationRepository().TouchUpdatedAt(ctx, conversationId, time.Now()); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisherService.PublishChatMessageCreated(ctx, dto.ChatMessageCreatedEvent{
		MessageId:      message.Id,
		ConversationId: conversationId,
		SenderType:     message.SenderType,
		CreatedAt:      message.CreatedAt,
	})

	return toMessageResponse(&message), nil
}

func (s *conversationService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MessageRepository().Delete(ctx, id)
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	if c == nil {
		return nil
	}
	return &dto.ConversationResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		Content:        m.Content,
		SenderType:     m.SenderType,
		CreatedAt:      m.CreatedAt,
	}
}
