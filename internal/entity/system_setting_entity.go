package entity

import (
	"time"

	"github.com/google/uuid"
)

type SystemSetting struct {
	Id          uuid.UUID
	Key         string
	Value       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
