package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// NOTE: DTOs travel from usecase to handler

// Input commands
type RegisterCommand struct {
	Username string `validate:"required,min=3,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

type LoginCommand struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type UpdateProfileCommand struct {
	Username  *string
	AvatarURL *string
}

// Output DTOs
type UserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	AvatarURL  *string    `json:"avatar_url,omitempty"`
	IsOnline   bool       `json:"is_online"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// PublicProfileDTO is the projection other users are allowed to see.
type PublicProfileDTO struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	AvatarURL  *string    `json:"avatar_url,omitempty"`
	IsOnline   bool       `json:"is_online"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// AuthResult is a result payload, not an error: expected negative
// outcomes of signup/login (name taken, bad password) come back with
// Success=false while the call itself succeeds.
type AuthResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Token        string   `json:"token,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	User         *UserDTO `json:"user,omitempty"`
}
