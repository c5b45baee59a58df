package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	UserId          uuid.UUID `json:"user_id" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Description     *string   `json:"description"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled confirmed rescheduled cancelled"`
}

type UpdateAppointmentRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	AppointmentDate *time.Time `json:"appointment_date"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled confirmed rescheduled cancelled"`
}

type AppointmentResponse struct {
	Id              uuid.UUID `json:"id"`
	UserId          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
