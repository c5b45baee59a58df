package contract

import (
	"context"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, conversation *entity.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	// FindAll returns conversations ordered by updated_at descending.
	FindAll(ctx context.Context) ([]*entity.Conversation, error)
	// TouchUpdatedAt refreshes only the updated_at column.
	TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error
}
