package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type messageRepository struct {
	store *Store
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	message.CreatedAt = time.Now()
	r.store.messages = append(r.store.messages, *message)
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.Id != id {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *messageRepository) FindAllByConversationID(ctx context.Context, conversationId uuid.UUID) ([]*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Message, 0)
	for _, m := range r.store.messages {
		if m.ConversationId == conversationId {
			m := m
			result = append(result, &m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
