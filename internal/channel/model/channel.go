package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	user "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Basic info. Name is empty for private chats.
	Name        string  `bun:",notnull"`
	Description *string `bun:",null"`
	IsPrivate   bool    `bun:",notnull,default:false"` // immutable after creation

	// DMKey is the canonical sorted member pair of a freshly created 1:1
	// private chat ("<lowUUID>:<highUUID>"). The unique index over it
	// closes the check-then-create race on private chat dedup. Cleared
	// when a private chat grows beyond two members.
	DMKey *string `bun:",unique,nullzero"`

	// Ownership & metadata
	CreatedBy uuid.UUID  `bun:",notnull,type:uuid"`
	Creator   *user.User `bun:"rel:belongs-to,join:created_by=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Activity tracking
	LastMessageAt *time.Time `bun:",nullzero"`
	MessageCount  int64      `bun:",notnull,default:0"`
}

// DMKeyFor builds the canonical pair key, symmetric in argument order.
func DMKeyFor(a, b uuid.UUID) string {
	ids := []string{a.String(), b.String()}
	sort.Strings(ids)
	return ids[0] + ":" + ids[1]
}
