package model

import (
	"time"

	"github.com/google/uuid"
	user "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

// Role is a small closed enum with a total order by privilege.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Rank orders roles by privilege: owner=1, admin=2, member=3.
// Unknown roles sort last.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 1
	case RoleAdmin:
		return 2
	case RoleMember:
		return 3
	default:
		return 4
	}
}

func (r Role) CanModerate() bool {
	return r == RoleOwner || r == RoleAdmin
}

type ChannelMember struct {
	ChannelID uuid.UUID `bun:",pk,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role Role `bun:",notnull,default:'member'"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
