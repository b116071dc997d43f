package channel

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hacker-chat/internal/channel/model"
)

// Input commands
type CreateChannelCommand struct {
	Name             string
	Description      *string
	IsPrivate        bool
	InitialMemberIDs []uuid.UUID
	CreatorID        uuid.UUID
}

// Output DTOs
type ChannelDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description,omitempty"`
	IsPrivate     bool       `json:"is_private"`
	CreatedBy     uuid.UUID  `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	MessageCount  int64      `json:"message_count"`
}

type MemberDTO struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	IsOnline  bool       `json:"is_online"`
	Role      model.Role `json:"role"`
}

type ChannelWithMembersDTO struct {
	ChannelDTO
	MemberCount int          `json:"member_count"`
	Members     []*MemberDTO `json:"members"` // up to 5 sample members
}

// Result is a non-exceptional payload for operations whose negative
// outcome is expected and user-facing (join, leave).
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
