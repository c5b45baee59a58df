package service

import (
	"context"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/repository/memory"
	"healthlink-be/internal/repository/unitofwork"
)

// noopPublisher satisfies IPublisherService without a live bus.
type noopPublisher struct {
	published []dto.ChatMessageCreatedEvent
}

func (p *noopPublisher) PublishChatMessageCreated(ctx context.Context, event dto.ChatMessageCreatedEvent) error {
	p.published = append(p.published, event)
	return nil
}

func newMemoryFactory() (unitofwork.RepositoryFactory, *memory.Store) {
	store := memory.NewStore()
	return memory.NewRepositoryFactory(store), store
}
