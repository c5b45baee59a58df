package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatWebhookRequest is posted by the automation engine after it has run a
// chat turn. Either side of the exchange may be absent.
type ChatWebhookRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	UserMessage    *string   `json:"user_message"`
	BotResponse    *string   `json:"bot_response"`
}

type ChatWebhookResponse struct {
	Success bool `json:"success"`
}

type UserContextResponse struct {
	Profile      *ProfileResponse        `json:"profile"`
	Appointments []*AppointmentResponse  `json:"appointments"`
	HealthData   []*HealthRecordResponse `json:"healthData"`
	Timestamp    time.Time               `json:"timestamp"`
}
