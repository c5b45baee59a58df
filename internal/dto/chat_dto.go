package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Title  string    `json:"title" validate:"required"`
}

type UpdateConversationRequest struct {
	Title *string `json:"title"`
}

type ConversationResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMessageRequest carries no conversation id: the path segment is
// authoritative and overwrites any value a caller might send.
type CreateMessageRequest struct {
	Content    string `json:"content" validate:"required"`
	SenderType string `json:"sender_type" validate:"required,oneof=user bot"`
}

type MessageResponse struct {
	Id             uuid.UUID `json:"id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	Content        string    `json:"content"`
	SenderType     string    `json:"sender_type"`
	CreatedAt      time.Time `json:"created_at"`
}
