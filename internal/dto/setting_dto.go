package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSettingRequest struct {
	Key         string  `json:"key" validate:"required"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description"`
}

type UpdateSettingRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

type SettingResponse struct {
	Id          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
