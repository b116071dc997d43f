package model

import (
	"time"

	"github.com/google/uuid"
	user "github.com/appdotbuilder/hacker-chat/internal/user/model"
)

type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeLink  MessageType = "link"
)

func (t MessageType) Valid() bool {
	return t == TypeText || t == TypeImage || t == TypeLink
}

type Message struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChannelID uuid.UUID `bun:",notnull,type:uuid"`

	AuthorID uuid.UUID  `bun:",notnull,type:uuid"`
	Author   *user.User `bun:"rel:belongs-to,join:author_id=id"`

	Content string      `bun:",notnull"`
	Type    MessageType `bun:",notnull,default:'text'"`

	ImageURL *string `bun:",null"`

	// Link preview columns, populated best-effort for type=link.
	// LinkURL is set whenever a preview was attempted, even on unfurl
	// failure; the other three stay null in that case.
	LinkTitle       *string `bun:",null"`
	LinkDescription *string `bun:",null"`
	LinkImage       *string `bun:",null"`
	LinkURL         *string `bun:",null"`

	// Reply target, validated against the same channel at send time only.
	// Deleting the target later leaves the reference dangling on purpose.
	ReplyToID *uuid.UUID `bun:",nullzero,type:uuid"`

	Edited bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
