package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique handle (used for login and identity)
	Username string `bun:",unique,notnull"`
	Email    string `bun:",unique,notnull"`

	// Argon2id encoded hash, never exposed through DTOs
	PasswordHash string `bun:",notnull"`

	AvatarURL *string `bun:",null"`

	// Presence
	IsOnline   bool       `bun:",notnull,default:false"`
	LastSeenAt *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type UserWithToken struct {
	User         *User
	Token        string
	RefreshToken string
}
