package contract

import (
	"context"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindAllByConversationID returns the transcript ordered by created_at
	// ascending.
	FindAllByConversationID(ctx context.Context, conversationId uuid.UUID) ([]*entity.Message, error)
}
