package entity

import (
	"time"

	"github.com/google/uuid"
)

type HealthRecord struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	DataType   string
	Value      string
	Unit       *string
	RecordedAt time.Time
	CreatedAt  time.Time
}
