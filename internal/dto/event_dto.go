package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageCreatedEvent is published on the in-process bus whenever a
// message row is appended, for the audit consumer.
type ChatMessageCreatedEvent struct {
	MessageId      uuid.UUID `json:"message_id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	SenderType     string    `json:"sender_type"`
	CreatedAt      time.Time `json:"created_at"`
}
