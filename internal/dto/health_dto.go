package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateHealthRecordRequest struct {
	UserId     uuid.UUID  `json:"user_id" validate:"required"`
	DataType   string     `json:"data_type" validate:"required"`
	Value      string     `json:"value" validate:"required"`
	Unit       *string    `json:"unit"`
	RecordedAt *time.Time `json:"recorded_at"`
}

// ListHealthRecordsQuery mirrors the ?type / ?start_date / ?end_date query
// params. Both bounds are inclusive; absent filters impose no constraint.
type ListHealthRecordsQuery struct {
	DataType  string
	StartDate *time.Time
	EndDate   *time.Time
}

type HealthRecordResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	DataType   string    `json:"data_type"`
	Value      string    `json:"value"`
	Unit       *string   `json:"unit"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}
