package implementation

import (
	"context"
	"errors"
	"time"

	"healthlink-be/internal/entity"
	"healthlink-be/internal/mapper"
	"healthlink-be/internal/model"
	"healthlink-be/internal/repository/contract"
	"healthlink-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeError(err)
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) Update(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storeError(err)
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(r.db.WithContext(ctx).Delete(&model.ChatConversation{}, id).Error)
}

func (r *ConversationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var m model.ChatConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Conversation, error) {
	var models []*model.ChatConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "updated_at", Desc: true})
	if err := query.Find(&models).Error; err != nil {
		return nil, storeError(err)
	}
	return r.mapper.ConversationsToEntities(models), nil
}

func (r *ConversationRepositoryImpl) TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	return storeError(r.db.WithContext(ctx).
		Model(&model.ChatConversation{}).
		Where("id = ?", id).
		Update("updated_at", at).Error)
}
