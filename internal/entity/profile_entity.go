package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FullName  *string
	Phone     *string
	BirthDate *string
	Gender    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
