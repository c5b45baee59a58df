package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:text;not null"`
	Description     *string   `gorm:"type:text"`
	AppointmentDate time.Time `gorm:"not null;index"`
	Status          string    `gorm:"type:text;not null;default:scheduled"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
