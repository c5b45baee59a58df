package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderTypeUser = "user"
	SenderTypeBot  = "bot"
)

// Message is append-only from the API's perspective; transcript replay
// relies on created_at ascending order.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Content        string
	SenderType     string
	CreatedAt      time.Time
}
