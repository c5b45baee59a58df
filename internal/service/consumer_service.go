package service

import (
	"context"
	"encoding/json"
	"log"

	"healthlink-be/internal/dto"
	"healthlink-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains chat events into the structured audit log.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event dto.ChatMessageCreatedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat event: %v", err)
		msg.Ack() // malformed events must not loop forever
		return
	}

	cs.logger.Info("chat-audit", "Message appended", map[string]interface{}{
		"message_id":      event.MessageId.String(),
		"conversation_id": event.ConversationId.String(),
		"sender_type":     event.SenderType,
		"created_at":      event.CreatedAt,
	})
	msg.Ack()
}
