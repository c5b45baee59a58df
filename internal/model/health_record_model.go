package model

import (
	"time"

	"github.com/google/uuid"
)

type HealthRecord struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	DataType   string    `gorm:"type:text;not null;index"`
	Value      string    `gorm:"type:text;not null"`
	Unit       *string   `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (HealthRecord) TableName() string {
	return "health_data"
}
