package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled   = "scheduled"
	AppointmentStatusConfirmed   = "confirmed"
	AppointmentStatusRescheduled = "rescheduled"
	AppointmentStatusCancelled   = "cancelled"
)

type Appointment struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Title           string
	Description     *string
	AppointmentDate time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
