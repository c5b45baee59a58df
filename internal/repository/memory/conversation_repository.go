package memory

import (
	"context"
	"sort"
	"time"

	"healthlink-be/internal/entity"

	"github.com/google/uuid"
)

type conversationRepository struct {
	store *Store
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if conversation.Id == uuid.Nil {
		conversation.Id = uuid.New()
	}
	conversation.CreatedAt = now
	conversation.UpdatedAt = now
	r.store.conversations[conversation.Id] = *conversation
	return nil
}

func (r *conversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	conversation.UpdatedAt = time.Now()
	r.store.conversations[conversation.Id] = *conversation
	return nil
}

func (r *conversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.conversations, id)
	return nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if c, ok := r.store.conversations[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *conversationRepository) FindAll(ctx context.Context) ([]*entity.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.Conversation, 0, len(r.store.conversations))
	for _, c := range r.store.conversations {
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *conversationRepository) TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c, ok := r.store.conversations[id]; ok {
		c.UpdatedAt = at
		r.store.conversations[id] = c
	}
	return nil
}
