package service

import (
	"context"
	"encoding/json"
	"log"

	"healthlink-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishChatMessageCreated(ctx context.Context, event dto.ChatMessageCreatedEvent) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) PublishChatMessageCreated(ctx context.Context, event dto.ChatMessageCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		// Audit events are best-effort; a publish failure must not fail the
		// write that triggered it.
		log.Printf("[WARN] Failed to publish chat event: %v", err)
		return err
	}
	return nil
}
