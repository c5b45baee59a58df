package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	UserId    uuid.UUID `json:"user_id" validate:"required"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	BirthDate *string   `json:"birth_date"`
	Gender    *string   `json:"gender"`
}

// UpdateProfileRequest is a partial update: nil fields are left untouched.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender"`
}

type ProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	BirthDate *string   `json:"birth_date"`
	Gender    *string   `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
