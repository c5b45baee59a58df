package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  *string   `gorm:"type:text"`
	Phone     *string   `gorm:"type:text"`
	BirthDate *string   `gorm:"type:date"`
	Gender    *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
